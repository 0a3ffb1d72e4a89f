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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncryptDecryptRoundtrip(t *testing.T) {
	ciphertext, err := Encrypt("Auto-Satisfied via Universal Intent", "some-passphrase")
	assert.Nil(t, err)
	assert.NotEqual(t, "Auto-Satisfied via Universal Intent", ciphertext)

	plaintext, err := Decrypt(ciphertext, "some-passphrase")
	assert.Nil(t, err)
	assert.Equal(t, "Auto-Satisfied via Universal Intent", plaintext)
}

func TestEncryptProducesFreshNonce(t *testing.T) {
	a, err := Encrypt("payload", "key")
	assert.Nil(t, err)
	b, err := Encrypt("payload", "key")
	assert.Nil(t, err)

	assert.NotEqual(t, a, b)
}

func TestDecryptWrongKey(t *testing.T) {
	ciphertext, err := Encrypt("payload", "right-key")
	assert.Nil(t, err)

	_, err = Decrypt(ciphertext, "wrong-key")
	assert.NotNil(t, err)
}

func TestDecryptGarbage(t *testing.T) {
	_, err := Decrypt("not base64 !!", "key")
	assert.NotNil(t, err)

	_, err = Decrypt("YWJj", "key") // valid base64, shorter than nonce
	assert.NotNil(t, err)
}
