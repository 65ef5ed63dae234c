package analyst

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// attachmentContentLimit caps how much of each file is inlined into the
// prompt so a single large attachment cannot crowd out the instructions.
const attachmentContentLimit = 8000

// BuildAttachmentsContext reads local files and assembles the text block
// passed to WithAttachmentsContext. Each file gets a header with its name,
// detected MIME type and size; text-like content is inlined (truncated past
// the per-file limit), binary content is flagged and skipped.
func BuildAttachmentsContext(paths ...string) (string, error) {
	if len(paths) == 0 {
		return "", nil
	}

	var b strings.Builder
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read attachment %s: %w", path, err)
		}

		mtype := mimetype.Detect(data)
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "### %s (%s, %d bytes)\n", filepath.Base(path), mtype.String(), len(data))

		if !isTextLike(mtype) {
			b.WriteString("[conteúdo binário omitido]\n")
			continue
		}

		content := strings.TrimSpace(string(data))
		if len(content) > attachmentContentLimit {
			content = content[:attachmentContentLimit]
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// isTextLike walks the MIME hierarchy looking for a text/plain ancestor,
// which covers JSON, CSV, HTML and friends.
func isTextLike(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
