package irys

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aescanero/irys-upload-service/pkg/domain"
	"github.com/everFinance/goar"
	"github.com/everFinance/goar/types"
	"github.com/everFinance/goether"
)

// ErrMissingPrivateKey is returned when no wallet key is supplied
var ErrMissingPrivateKey = errors.New("IRYS_PRIVATE_KEY environment variable is not set")

// Signer builds ANS-104 data items signed with an Ethereum wallet key
type Signer struct {
	items   *goar.ItemSigner
	address string
}

// NewSigner parses a hex encoded secp256k1 private key, with or without 0x prefix
func NewSigner(privateKey string) (*Signer, error) {
	privateKey = strings.TrimSpace(privateKey)
	if privateKey == "" {
		return nil, ErrMissingPrivateKey
	}

	eth, err := goether.NewSigner(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid wallet key: %w", err)
	}

	items, err := goar.NewItemSigner(eth)
	if err != nil {
		return nil, fmt.Errorf("failed to create item signer: %w", err)
	}

	return &Signer{
		items:   items,
		address: eth.Address.Hex(),
	}, nil
}

// Address returns the checksummed wallet address
func (s *Signer) Address() string {
	return s.address
}

// SignItem wraps data and its tags in a signed data item and returns its
// binary encoding together with the item id
func (s *Signer) SignItem(data []byte, tags []domain.Tag) ([]byte, string, error) {
	itemTags := make([]types.Tag, 0, len(tags))
	for _, tag := range tags {
		itemTags = append(itemTags, types.Tag{Name: tag.Name, Value: tag.Value})
	}

	item, err := s.items.CreateAndSignItem(data, "", "", itemTags)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign data item: %w", err)
	}

	return item.ItemBinary, item.Id, nil
}
