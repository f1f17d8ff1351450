package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// Calculator is an interface for computing file checksums.
// This abstraction allows for different checksum strategies and algorithms.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized content.
	// Normalization makes checksums resilient to formatting changes.
	CalculateNormalized(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	normalized := c.normalize(string(content))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// normalize strips comments and collapses whitespace.
func (c SHA256) normalize(content string) string {
	cleaned := c.removeComments(content)

	var b strings.Builder
	b.Grow(len(cleaned))

	lastWasSpace := false
	for _, r := range cleaned {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			b.WriteRune(r)
			lastWasSpace = false
		}
	}

	return strings.TrimSpace(b.String())
}

type markupState int

const (
	msText markupState = iota
	msTag
	msQuote
	msComment
	msCData
)

const (
	commentOpen  = "<!--"
	commentClose = "-->"
	cdataOpen    = "<![CDATA["
	cdataClose   = "]]>"
)

// removeComments removes XML comments while preserving CDATA sections and
// quoted attribute values, where "<!--" is literal text.
func (c SHA256) removeComments(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	state := msText
	var quote byte
	i := 0

	for i < len(content) {
		ch := content[i]

		switch state {
		case msText:
			switch {
			case strings.HasPrefix(content[i:], commentOpen):
				state = msComment
				b.WriteByte(' ')
				i += len(commentOpen)
			case strings.HasPrefix(content[i:], cdataOpen):
				state = msCData
				b.WriteString(cdataOpen)
				i += len(cdataOpen)
			case ch == '<':
				state = msTag
				b.WriteByte(ch)
				i++
			default:
				b.WriteByte(ch)
				i++
			}

		case msTag:
			b.WriteByte(ch)
			switch ch {
			case '"', '\'':
				state = msQuote
				quote = ch
			case '>':
				state = msText
			}
			i++

		case msQuote:
			b.WriteByte(ch)
			if ch == quote {
				state = msTag
			}
			i++

		case msComment:
			if strings.HasPrefix(content[i:], commentClose) {
				state = msText
				i += len(commentClose)
			} else {
				i++
			}

		case msCData:
			if strings.HasPrefix(content[i:], cdataClose) {
				b.WriteString(cdataClose)
				state = msText
				i += len(cdataClose)
			} else {
				b.WriteByte(ch)
				i++
			}
		}
	}

	return b.String()
}
