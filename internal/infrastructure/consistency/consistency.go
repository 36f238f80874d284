// Package consistency compares the product table in the source JSON with the
// copy embedded in a bundled page.
package consistency

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/unipro/glassfinder/internal/domain"
	"github.com/unipro/glassfinder/internal/infrastructure/catalogfile"
)

var (
	// ErrProductsNotFound is returned when a page has no embedded product table
	ErrProductsNotFound = errors.New("could not find 'const uniproProducts = [...]' in page")

	// ErrProductsUnparsable is returned when the embedded product table is not valid JSON
	ErrProductsUnparsable = errors.New("embedded product table is not valid JSON")
)

// embeddedProductsRegex captures everything from the opening bracket to the first "];"
var embeddedProductsRegex = regexp.MustCompile(`(?s)const uniproProducts\s*=\s*(\[.*?\]);`)

// Report is the outcome of comparing two product tables by box code
type Report struct {
	SourceCount int
	TargetCount int
	// Missing box codes are in the source but not the target. These fail the check.
	Missing []string
	// Extra box codes are in the target but not the source. These only warn.
	Extra []string
}

// OK reports whether every source product is present in the target
func (r Report) OK() bool {
	return len(r.Missing) == 0
}

// ExtractProducts parses the product table embedded in a bundled page
func ExtractProducts(page []byte) ([]domain.Product, error) {
	match := embeddedProductsRegex.FindSubmatch(page)
	if match == nil {
		return nil, ErrProductsNotFound
	}

	products, err := catalogfile.ParseProducts(match[1], "embedded products")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProductsUnparsable, err)
	}
	return products, nil
}

// Compare computes the symmetric difference of box codes between source and
// target. Codes are compared exactly and reported in first-seen order.
func Compare(source, target []domain.Product) Report {
	sourceCodes := codeSet(source)
	targetCodes := codeSet(target)

	return Report{
		SourceCount: len(source),
		TargetCount: len(target),
		Missing:     difference(source, targetCodes),
		Extra:       difference(target, sourceCodes),
	}
}

func codeSet(products []domain.Product) map[string]bool {
	set := make(map[string]bool, len(products))
	for _, p := range products {
		set[p.BoxCode] = true
	}
	return set
}

// difference lists codes of products absent from other, once each
func difference(products []domain.Product, other map[string]bool) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, p := range products {
		if other[p.BoxCode] || seen[p.BoxCode] {
			continue
		}
		seen[p.BoxCode] = true
		out = append(out, p.BoxCode)
	}
	return out
}

// WriteText prints a human readable report
func (r Report) WriteText(w io.Writer) error {
	const rule = "---------------------------------------------------"

	lines := []string{
		rule,
		fmt.Sprintf("Source products count: %d", r.SourceCount),
		fmt.Sprintf("Target products count: %d", r.TargetCount),
		rule,
	}

	if len(r.Missing) > 0 {
		lines = append(lines, fmt.Sprintf("MISSING %d boxCodes in target (present in source only):", len(r.Missing)))
		for _, code := range r.Missing {
			lines = append(lines, fmt.Sprintf(" - %q", code))
		}
	} else {
		lines = append(lines, "All source products are present in target.")
	}

	if len(r.Extra) > 0 {
		lines = append(lines, fmt.Sprintf("WARNING: %d extra boxCodes in target (absent from source):", len(r.Extra)))
		for _, code := range r.Extra {
			lines = append(lines, fmt.Sprintf(" - %q", code))
		}
	} else {
		lines = append(lines, "No extra products in target.")
	}

	lines = append(lines, rule)
	if r.OK() {
		lines = append(lines, "SUCCESS: data is synchronized.")
	} else {
		lines = append(lines, "FAILURE: data is not matching.")
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
