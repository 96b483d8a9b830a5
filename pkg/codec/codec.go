// Package codec reads and writes lists of double3 vectors in the formats
// accepted by the worldmath command.
package codec

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-worldmath/pkg/double3"
)

// Format names a vector list encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
	// FormatText is one vector per line as written by double3.Vector.String.
	FormatText Format = "text"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatYAML, FormatCBOR, FormatText}

var ErrUnsupportedFormat = errors.New("unsupported format")

// ParseFormat resolves a format name, ignoring case. "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatYAML, FormatCBOR, FormatText:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnsupportedFormat)
	}
}

// Encode writes vectors to w in the given format. JSON cannot represent NaN
// or Inf components and fails on them; the other formats keep them.
func Encode(w io.Writer, format Format, vectors []double3.Vector) error {
	if vectors == nil {
		vectors = []double3.Vector{}
	}

	switch format {
	case FormatJSON:
		if err := json.NewEncoder(w).Encode(vectors); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(vectors); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	case FormatCBOR:
		data, err := cbor.Marshal(vectors)
		if err != nil {
			return fmt.Errorf("encode cbor: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write cbor: %w", err)
		}
	case FormatText:
		bw := bufio.NewWriter(w)
		for _, v := range vectors {
			bw.WriteString(v.String())
			bw.WriteByte('\n')
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("write text: %w", err)
		}
	default:
		return fmt.Errorf("encode %q: %w", format, ErrUnsupportedFormat)
	}
	return nil
}

// Decode reads a vector list from r. Empty input decodes to an empty list.
func Decode(r io.Reader, format Format) ([]double3.Vector, error) {
	vectors := []double3.Vector{}

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&vectors); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&vectors); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatCBOR:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read cbor: %w", err)
		}
		if len(data) == 0 {
			break
		}
		if err := cbor.Unmarshal(data, &vectors); err != nil {
			return nil, fmt.Errorf("decode cbor: %w", err)
		}
	case FormatText:
		scanner := bufio.NewScanner(r)
		for line := 1; scanner.Scan(); line++ {
			text := strings.TrimSpace(scanner.Text())
			if text == "" || strings.HasPrefix(text, "#") {
				continue
			}
			v, err := double3.Parse(text)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			vectors = append(vectors, v)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read text: %w", err)
		}
	default:
		return nil, fmt.Errorf("decode %q: %w", format, ErrUnsupportedFormat)
	}
	return vectors, nil
}
