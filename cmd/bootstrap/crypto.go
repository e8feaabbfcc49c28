package bootstrap

import (
	"quoteshare/internal/pkg/config"
	"quoteshare/internal/pkg/crypto"

	"go.uber.org/fx"
)

var CryptoModule = fx.Module("crypto",
	fx.Provide(
		NewCipher,
	),
)

func NewCipher(cfg config.Config) (*crypto.Cipher, error) {
	return crypto.NewCipher(cfg.Crypto.EncryptionKey)
}
