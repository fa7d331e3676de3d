package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode"
)

// ID is a product id. Catalogs write it either as a number or a string.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("product id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

type Product struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	Size     string `json:"size,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

var firstDigits = regexp.MustCompile(`\d+`)

// ColorOrDefault returns the product color, "grey" when unset.
func (p Product) ColorOrDefault() string {
	if c := strings.TrimSpace(p.Color); c != "" {
		return c
	}
	return "grey"
}

// SizeOrDefault returns the product size, "M" when unset.
func (p Product) SizeOrDefault() string {
	if s := strings.TrimSpace(p.Size); s != "" {
		return s
	}
	return "M"
}

// ImageNumber is the first run of digits in ImageURL, or the product id when
// the URL has none.
func (p Product) ImageNumber() string {
	if m := firstDigits.FindString(p.ImageURL); m != "" {
		return m
	}
	return string(p.ID)
}

// FileDigits concatenates every digit of the ImageURL file stem
// ("img/image21.jpg" gives "21"). Empty when the stem has no digits.
func (p Product) FileDigits() string {
	base := path.Base(strings.ReplaceAll(p.ImageURL, "\\", "/"))
	stem := strings.TrimSuffix(base, path.Ext(base))
	var b strings.Builder
	for _, r := range stem {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Caption is the "name|id" text rendered under the suitcase.
func (p Product) Caption() string {
	return p.Name + "|" + string(p.ID)
}
