package auth

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"inkwell/config"
	"inkwell/internal/domain/service"
)

const defaultCodeLength = 6

type numericCodeGenerator struct {
	length int
	max    *big.Int
}

// NewCodeGenerator returns a generator of zero-padded numeric codes.
func NewCodeGenerator(cfg *config.Config) service.CodeGenerator {
	length := defaultCodeLength
	if cfg.Registration != nil && cfg.Registration.CodeLength > 0 {
		length = cfg.Registration.CodeLength
	}

	return &numericCodeGenerator{
		length: length,
		max:    new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil),
	}
}

func (g *numericCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, g.max)
	if err != nil {
		return "", errors.Wrap(err, "generate one-time code")
	}

	code := n.String()
	if pad := g.length - len(code); pad > 0 {
		code = strings.Repeat("0", pad) + code
	}

	return code, nil
}
