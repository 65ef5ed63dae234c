package analyst

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAttachment(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestBuildAttachmentsContext_TextFile(t *testing.T) {
	path := writeAttachment(t, "plano.txt", []byte("metas do lançamento: 100 vendas"))

	out, err := BuildAttachmentsContext(path)
	require.NoError(t, err)

	assert.Contains(t, out, "### plano.txt")
	assert.Contains(t, out, "metas do lançamento: 100 vendas")
}

func TestBuildAttachmentsContext_JSONFile(t *testing.T) {
	path := writeAttachment(t, "dados.json", []byte(`{"preco": 997}`))

	out, err := BuildAttachmentsContext(path)
	require.NoError(t, err)

	assert.Contains(t, out, "### dados.json")
	assert.Contains(t, out, `{"preco": 997}`)
}

func TestBuildAttachmentsContext_BinaryFile(t *testing.T) {
	// PNG magic marks the file as binary
	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)
	path := writeAttachment(t, "logo.png", png)

	out, err := BuildAttachmentsContext(path)
	require.NoError(t, err)

	assert.Contains(t, out, "### logo.png")
	assert.Contains(t, out, "[conteúdo binário omitido]")
}

func TestBuildAttachmentsContext_TruncatesLargeFiles(t *testing.T) {
	big := strings.Repeat("linha de contexto\n", 1000)
	path := writeAttachment(t, "grande.txt", []byte(big))

	out, err := BuildAttachmentsContext(path)
	require.NoError(t, err)

	// header plus the capped content, nothing near the original size
	assert.Less(t, len(out), attachmentContentLimit+200)
}

func TestBuildAttachmentsContext_MultipleFiles(t *testing.T) {
	a := writeAttachment(t, "a.txt", []byte("primeiro"))
	b := writeAttachment(t, "b.txt", []byte("segundo"))

	out, err := BuildAttachmentsContext(a, b)
	require.NoError(t, err)

	assert.Contains(t, out, "primeiro")
	assert.Contains(t, out, "segundo")
	assert.Less(t, strings.Index(out, "primeiro"), strings.Index(out, "segundo"))
}

func TestBuildAttachmentsContext_MissingFile(t *testing.T) {
	_, err := BuildAttachmentsContext(filepath.Join(t.TempDir(), "inexistente.txt"))
	assert.Error(t, err)
}

func TestBuildAttachmentsContext_NoPaths(t *testing.T) {
	out, err := BuildAttachmentsContext()
	require.NoError(t, err)
	assert.Empty(t, out)
}
