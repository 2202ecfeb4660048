package middleware

import (
	"bytes"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/totalpharma/pdv-api/internal/domain/entity"
	"github.com/totalpharma/pdv-api/internal/domain/repository"
	"github.com/totalpharma/pdv-api/internal/presentation/http/dto/response"
)

const (
	// IdempotencyKeyHeader carries the client-chosen key that dedupes
	// retried submissions from a flaky counter terminal.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long a stored key replays before a
	// repeat is treated as a new request.
	IdempotencyKeyTTL = 24 * time.Hour

	maxIdempotencyKeyLen = 128
)

// IdempotencyConfig holds configuration for the idempotency middlewares
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
}

// bodyRecorder tees the response body so it can be stored for replay.
type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// authenticatedUser extracts the user id placed by the auth middleware.
// Keys are scoped per user so two attendants can never replay each
// other's responses.
func authenticatedUser(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

func replayStored(c *gin.Context, stored *entity.IdempotencyKey) {
	log.Printf("Replaying idempotent response for key %s (%s)", stored.Key, stored.Endpoint)
	c.Header("X-Idempotency-Replayed", "true")
	c.Data(stored.ResponseCode, "application/json", []byte(stored.ResponseBody))
	c.Abort()
}

func storeResponse(c *gin.Context, repo repository.IdempotencyRepository, key string, userID uuid.UUID, body string) {
	stored := &entity.IdempotencyKey{
		Key:          key,
		UserID:       userID,
		Endpoint:     c.Request.Method + " " + c.FullPath(),
		ResponseCode: c.Writer.Status(),
		ResponseBody: body,
		ExpiresAt:    time.Now().Add(IdempotencyKeyTTL),
	}
	if err := repo.Create(c.Request.Context(), stored); err != nil {
		log.Printf("Failed to store idempotency key %s: %v", key, err)
	}
}

// Idempotency replays the stored response when a mutating request
// repeats a key. Requests without a key pass through untouched.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case "POST", "PUT", "PATCH":
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || len(key) > maxIdempotencyKeyLen {
			c.Next()
			return
		}

		userID, ok := authenticatedUser(c)
		if !ok {
			c.Next()
			return
		}

		existing, err := config.Repo.GetByKey(c.Request.Context(), key, userID)
		if err == nil && existing != nil && !existing.IsExpired() {
			replayStored(c, existing)
			return
		}

		recorder := &bodyRecorder{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = recorder

		c.Next()

		storeResponse(c, config.Repo, key, userID, recorder.body.String())
	}
}

// IdempotencyRequired guards the finalize endpoint: the key header is
// mandatory, and only successful responses are pinned to the key so a
// failed settlement can be retried with the same one.
func IdempotencyRequired(config IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "POST" {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			response.BadRequest(c, "Idempotency-Key header is required for this request")
			c.Abort()
			return
		}
		if len(key) > maxIdempotencyKeyLen {
			response.BadRequest(c, "Idempotency-Key header is too long")
			c.Abort()
			return
		}

		userID, ok := authenticatedUser(c)
		if !ok {
			response.Unauthorized(c, "User not authenticated")
			c.Abort()
			return
		}

		existing, err := config.Repo.GetByKey(c.Request.Context(), key, userID)
		if err != nil {
			response.InternalServerError(c, "Failed to check idempotency key")
			c.Abort()
			return
		}
		if existing != nil && !existing.IsExpired() {
			replayStored(c, existing)
			return
		}

		recorder := &bodyRecorder{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = recorder

		c.Next()

		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			storeResponse(c, config.Repo, key, userID, recorder.body.String())
		}
	}
}
