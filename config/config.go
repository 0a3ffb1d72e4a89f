// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"os"
	"strings"
	"time"

	"github.com/l3montree-dev/crossguard/utils"
)

// Build information, filled at build time.
var (
	Version   string
	Commit    string
	Branch    string
	BuildDate string
)

// TokenSecret signs and verifies the bearer tokens carrying
// {subject, tenant_slug}.
func TokenSecret() string {
	return os.Getenv("TOKEN_SECRET")
}

func TokenLifetime() time.Duration {
	if v := os.Getenv("TOKEN_LIFETIME"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return 24 * time.Hour
}

// CORSAllowOrigins is a comma separated allowlist. Defaults to the local
// frontend.
func CORSAllowOrigins() []string {
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		return strings.Split(v, ",")
	}
	return []string{"http://localhost:3000"}
}

func evidenceEncryptionKey() string {
	return os.Getenv("EVIDENCE_ENCRYPTION_KEY")
}

// EncryptEvidenceMetadata seals a compliance result's evidence metadata with
// the process-wide symmetric key. An empty key stores the plaintext - only
// acceptable in tests and local development.
func EncryptEvidenceMetadata(plaintext string) (string, error) {
	key := evidenceEncryptionKey()
	if key == "" {
		return plaintext, nil
	}
	return utils.Encrypt(plaintext, key)
}

func DecryptEvidenceMetadata(ciphertext string) (string, error) {
	key := evidenceEncryptionKey()
	if key == "" {
		return ciphertext, nil
	}
	return utils.Decrypt(ciphertext, key)
}
