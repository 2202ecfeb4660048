package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	t.Run("short text fits on one line", func(t *testing.T) {
		assert.Equal(t, []string{"Rua das Flores"}, WrapText("Rua das Flores", 32))
	})

	t.Run("wraps at word boundaries", func(t *testing.T) {
		lines := WrapText("Rua das Flores numero cem fundos", 12)
		for _, line := range lines {
			assert.LessOrEqual(t, len(line), 12)
		}
		assert.Equal(t, []string{"Rua das", "Flores", "numero cem", "fundos"}, lines)
	})

	t.Run("hard breaks words longer than a line", func(t *testing.T) {
		assert.Equal(t, []string{"abcde", "fghij", "kl"}, WrapText("abcdefghijkl", 5))
	})

	t.Run("respects existing newlines", func(t *testing.T) {
		assert.Equal(t, []string{"linha um", "linha dois"}, WrapText("linha um\nlinha dois", 20))
	})

	t.Run("empty input yields one empty line", func(t *testing.T) {
		assert.Equal(t, []string{""}, WrapText("", 20))
	})
}

func TestDocumentKeyValue(t *testing.T) {
	d := NewDocument(20)
	d.KeyValue("Total:", "9.99")

	assert.Contains(t, string(d.Bytes()), "Total:          9.99")
}

func TestDocumentKeyValueOverflowKeepsOneSpace(t *testing.T) {
	d := NewDocument(10)
	d.KeyValue("Pagamento:", "123.45")

	assert.Contains(t, string(d.Bytes()), "Pagamento: 123.45")
}

func TestDocumentStartsWithInit(t *testing.T) {
	d := NewDocument(48)
	b := d.Bytes()

	assert.GreaterOrEqual(t, len(b), 2)
	assert.Equal(t, []byte{ESC, '@'}, b[:2])
}
