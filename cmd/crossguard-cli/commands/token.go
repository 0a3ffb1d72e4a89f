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

package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/l3montree-dev/crossguard/config"
	"github.com/l3montree-dev/crossguard/middlewares"
	"github.com/l3montree-dev/crossguard/shared"
)

func NewTokenCommand() *cobra.Command {
	token := cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user inside a tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint

			userID, _ := cmd.Flags().GetString("user")
			tenantSlug, _ := cmd.Flags().GetString("tenant")

			secret := config.TokenSecret()
			if secret == "" {
				return errors.New("TOKEN_SECRET is not set")
			}

			signed, err := middlewares.NewToken(secret, userID, tenantSlug)
			if err != nil {
				return errors.Wrap(err, "could not sign token")
			}

			fmt.Println(signed)
			return nil
		},
	}

	token.Flags().String("user", "", "user id to embed as the token subject")
	token.Flags().String("tenant", "", "tenant slug the token is scoped to")
	token.MarkFlagRequired("user")   // nolint
	token.MarkFlagRequired("tenant") // nolint
	return &token
}
