package op

import (
	"context"
	"fmt"

	"github.com/1Password/connect-sdk-go/connect"
	"github.com/1Password/connect-sdk-go/onepassword"
)

// ConnectReader resolves secret references through a 1Password Connect
// server. Vaults and items may be referenced by title or by UUID.
type ConnectReader struct {
	client connect.Client
}

func NewConnectReader(host, token string) *ConnectReader {
	return &ConnectReader{client: connect.NewClient(host, token)}
}

func (r *ConnectReader) Read(_ context.Context, ref string) (string, error) {
	sr, err := ParseSecretReference(ref)
	if err != nil {
		return "", err
	}

	vaultID, err := r.vaultID(sr.Vault)
	if err != nil {
		return "", err
	}

	item, err := r.item(sr.Item, vaultID)
	if err != nil {
		return "", err
	}

	for _, f := range item.Fields {
		if sr.Section != "" && !inSection(f, sr.Section) {
			continue
		}
		if f.Label == sr.Field || f.ID == sr.Field {
			return f.Value, nil
		}
	}

	return "", fmt.Errorf("field %q not found in item %q", sr.Field, sr.Item)
}

func (r *ConnectReader) vaultID(vault string) (string, error) {
	vaults, err := r.client.GetVaultsByTitle(vault)
	if err != nil {
		return "", fmt.Errorf("looking up vault %q: %w", vault, err)
	}

	switch len(vaults) {
	case 0:
		// Not a known title; assume it's already a UUID.
		return vault, nil
	case 1:
		return vaults[0].ID, nil
	default:
		return "", fmt.Errorf("vault title %q is ambiguous (%d matches)", vault, len(vaults))
	}
}

func (r *ConnectReader) item(name, vaultID string) (*onepassword.Item, error) {
	item, err := r.client.GetItemByTitle(name, vaultID)
	if err == nil {
		return item, nil
	}

	// Not a known title; it may be an item UUID.
	item, uuidErr := r.client.GetItem(name, vaultID)
	if uuidErr != nil {
		return nil, fmt.Errorf("looking up item %q: %w", name, err)
	}
	return item, nil
}

func inSection(f *onepassword.ItemField, section string) bool {
	if f.Section == nil {
		return false
	}
	return f.Section.Label == section || f.Section.ID == section
}
