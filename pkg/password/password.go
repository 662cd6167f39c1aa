package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	Argon2id = "argon2id"
	Bcrypt   = "bcrypt"
)

var ErrMismatch error = errors.New("password does not match hash")
var ErrUnknownAlgorithm error = errors.New("unknown hash algorithm")
var ErrMalformedHash error = errors.New("malformed password hash")

// Argon2Params mirror the defaults of the argon2-cffi PasswordHasher so hashes
// written by earlier deployments keep verifying.
type Argon2Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

var DefaultArgon2Params = Argon2Params{
	Time:    3,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

// Service hashes new secrets with one algorithm and verifies hashes of any supported algorithm.
type Service struct {
	algorithm  string
	argon2     Argon2Params
	bcryptCost int
}

func NewService(algorithm string) (*Service, error) {
	switch algorithm {
	case Argon2id, Bcrypt:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	return &Service{
		algorithm:  algorithm,
		argon2:     DefaultArgon2Params,
		bcryptCost: bcrypt.DefaultCost,
	}, nil
}

// Hash returns an encoded one-way hash of plaintext.
func (s *Service) Hash(plaintext string) (string, error) {
	if s.algorithm == Bcrypt {
		hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.bcryptCost)
		if err != nil {
			return "", fmt.Errorf("bcrypt generate: %w", err)
		}
		return string(hash), nil
	}

	salt := make([]byte, s.argon2.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, s.argon2.Time, s.argon2.Memory, s.argon2.Threads, s.argon2.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		s.argon2.Memory,
		s.argon2.Time,
		s.argon2.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify returns nil when plaintext matches hash and ErrMismatch when it does not.
func (s *Service) Verify(hash, plaintext string) error {
	switch {
	case strings.HasPrefix(hash, "$argon2id$"):
		return verifyArgon2id(hash, plaintext)
	case strings.HasPrefix(hash, "$2a$"), strings.HasPrefix(hash, "$2b$"), strings.HasPrefix(hash, "$2y$"):
		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedHash, err)
		}
		return nil
	default:
		return ErrMalformedHash
	}
}

func verifyArgon2id(hash, plaintext string) error {
	// $argon2id$v=19$m=65536,t=3,p=4$<salt>$<key>
	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		return ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return fmt.Errorf("%w: version: %w", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return fmt.Errorf("%w: unsupported version %d", ErrMalformedHash, version)
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return fmt.Errorf("%w: params: %w", ErrMalformedHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("%w: salt: %w", ErrMalformedHash, err)
	}

	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("%w: key: %w", ErrMalformedHash, err)
	}

	got := argon2.IDKey([]byte(plaintext), salt, time, memory, threads, uint32(len(want)))
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrMismatch
	}

	return nil
}
