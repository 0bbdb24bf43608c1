package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDocumentNumber(t *testing.T) {
	issued := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	out, err := FormatDocumentNumber(DefaultOrderNumberTemplate, issued, 7)
	require.NoError(t, err)
	assert.Equal(t, "ORD-20260314-0007", out)

	out, err = FormatDocumentNumber(DefaultInvoiceNumberTemplate, issued, 123)
	require.NoError(t, err)
	assert.Equal(t, "INV-20260314-0123", out)

	out, err = FormatDocumentNumber("{YY}{MM}-{SEQ}", issued, 42)
	require.NoError(t, err)
	assert.Equal(t, "2603-42", out)
}

func TestFormatDocumentNumberErrors(t *testing.T) {
	issued := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	_, err := FormatDocumentNumber("", issued, 1)
	assert.Error(t, err)

	_, err = FormatDocumentNumber(DefaultOrderNumberTemplate, issued, 0)
	assert.Error(t, err)

	_, err = FormatDocumentNumber("ORD-{WAT}", issued, 1)
	assert.Error(t, err)
}
