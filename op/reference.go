package op

import (
	"fmt"
	"strings"
)

const referencePrefix = "op://"

// FormatError reports a 1Password reference that doesn't match the expected
// shape. It carries the offending reference verbatim.
type FormatError struct {
	Reference string
	Expected  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid 1Password reference %q: expected %s", e.Reference, e.Expected)
}

// ValidateItemReference checks that ref identifies a whole vault item:
// op://<vault>/<item>, exactly two segments, and no literal "item/" segment
// (a common paste error from item share links).
func ValidateItemReference(ref string) error {
	formatErr := &FormatError{Reference: ref, Expected: "op://<vault>/<item>"}

	rest, ok := strings.CutPrefix(ref, referencePrefix)
	if !ok {
		return formatErr
	}
	if strings.Contains(rest, "item/") {
		return formatErr
	}

	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return formatErr
	}

	return nil
}

// SecretReference is a parsed op://<vault>/<item>/[section/]<field> secret
// reference, identifying a single field value.
type SecretReference struct {
	Vault   string
	Item    string
	Section string
	Field   string
}

// ParseSecretReference splits ref into its vault/item/section/field parts.
func ParseSecretReference(ref string) (SecretReference, error) {
	formatErr := &FormatError{Reference: ref, Expected: "op://<vault>/<item>/[section/]<field>"}

	rest, ok := strings.CutPrefix(ref, referencePrefix)
	if !ok {
		return SecretReference{}, formatErr
	}

	parts := strings.Split(rest, "/")
	for _, p := range parts {
		if p == "" {
			return SecretReference{}, formatErr
		}
	}

	switch len(parts) {
	case 3:
		return SecretReference{Vault: parts[0], Item: parts[1], Field: parts[2]}, nil
	case 4:
		return SecretReference{Vault: parts[0], Item: parts[1], Section: parts[2], Field: parts[3]}, nil
	default:
		return SecretReference{}, formatErr
	}
}
