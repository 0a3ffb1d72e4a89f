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
	"encoding/json"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/l3montree-dev/crossguard/database/models"
	"github.com/l3montree-dev/crossguard/database/repositories"
	"github.com/l3montree-dev/crossguard/services"
	"github.com/l3montree-dev/crossguard/shared"
	"github.com/l3montree-dev/crossguard/utils"
)

// the taxonomy is closed. Intent categories and control domains must name one
// of these processes.
var canonicalProcessNames = []string{
	"Governance & Policy",
	"Risk Management",
	"HR Security",
	"Access Control (IAM)",
	"Physical Security",
	"Operations",
	"Cryptography",
	"Logging & Monitoring",
	"Clock Synchronization",
	"Vulnerability Management",
	"Capacity Management",
	"Backup Management",
	"Network Security",
	"SDLC (Development)",
	"Supplier Management",
	"Incident & Resilience",
	"Threat Intelligence",
	"Legal & Compliance",
	"Performance Evaluation",
	"Improvement",
	"Asset Management",
	"Configuration Management",
}

type catalogControl struct {
	ControlID      string `json:"control_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	Domain         string `json:"domain"`
	Classification string `json:"classification"`
}

type catalogFramework struct {
	Code     string           `json:"code"`
	Name     string           `json:"name"`
	Version  string           `json:"version"`
	Controls []catalogControl `json:"controls"`
}

type catalogIntent struct {
	IntentID    string `json:"intent_id"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type catalogCrosswalk struct {
	IntentID         string `json:"intent_id"`
	FrameworkCode    string `json:"framework_code"`
	ControlReference string `json:"control_reference"`
}

type catalogFile struct {
	Frameworks []catalogFramework `json:"frameworks"`
	Intents    []catalogIntent    `json:"intents"`
	Crosswalks []catalogCrosswalk `json:"crosswalks"`
}

func NewSeedCommand() *cobra.Command {
	seed := cobra.Command{
		Use:   "seed",
		Short: "Seed the canonical catalog. Idempotent - existing rows and tenant state are never clobbered",
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				return errors.Wrap(err, "could not connect to database")
			}

			if err := seedProcesses(db); err != nil {
				return err
			}

			catalogPath, _ := cmd.Flags().GetString("catalog")
			if catalogPath == "" {
				slog.Info("no catalog file given, only the process taxonomy was seeded")
				return nil
			}

			return seedCatalog(db, catalogPath)
		},
	}

	seed.Flags().String("catalog", "", "path to a JSON catalog file with frameworks, controls, intents and crosswalks")
	return &seed
}

func seedProcesses(db shared.DB) error {
	processRepository := repositories.NewCanonicalProcessRepository(db)

	for _, name := range canonicalProcessNames {
		_, err := processRepository.ReadByName(name, nil)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrapf(err, "could not read canonical process %s", name)
		}

		process := models.CanonicalProcess{Name: name}
		if err := processRepository.Save(nil, &process); err != nil {
			return errors.Wrapf(err, "could not create canonical process %s", name)
		}
		slog.Info("created canonical process", "name", name)
	}

	return nil
}

func seedCatalog(db shared.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "could not read catalog file")
	}

	var catalog catalogFile
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return errors.Wrap(err, "could not parse catalog file")
	}

	frameworkRepository := repositories.NewFrameworkRepository(db)
	controlRepository := repositories.NewControlRepository(db)
	intentRepository := repositories.NewIntentRepository(db)
	crosswalkRepository := repositories.NewCrosswalkRepository(db)

	for _, fw := range catalog.Frameworks {
		framework, err := frameworkRepository.ReadByCode(fw.Code)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			framework = models.Framework{
				Code:    fw.Code,
				Name:    fw.Name,
				Version: fw.Version,
			}
			if err := frameworkRepository.Save(nil, &framework); err != nil {
				return errors.Wrapf(err, "could not create framework %s", fw.Code)
			}
			slog.Info("created framework", "code", fw.Code)
		} else if err != nil {
			return errors.Wrapf(err, "could not read framework %s", fw.Code)
		}

		for _, c := range fw.Controls {
			_, err := controlRepository.FindByReference(services.CatalogTenantID, framework.ID, c.ControlID)
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrapf(err, "could not read control %s", c.ControlID)
			}

			classification := models.ControlClassification(c.Classification)
			if classification == "" {
				classification = models.ControlClassificationManual
			}

			control := models.Control{
				ControlID:      c.ControlID,
				TenantID:       services.CatalogTenantID,
				FrameworkID:    framework.ID,
				Title:          c.Title,
				Description:    c.Description,
				Category:       c.Category,
				Domain:         c.Domain,
				Classification: classification,
			}
			if err := controlRepository.Save(nil, &control); err != nil {
				return errors.Wrapf(err, "could not create control %s", c.ControlID)
			}
		}
		slog.Info("seeded framework controls", "code", fw.Code, "count", len(fw.Controls))
	}

	for _, in := range catalog.Intents {
		if !utils.Contains(canonicalProcessNames, in.Category) {
			return errors.Errorf("intent %s references unknown category %q", in.IntentID, in.Category)
		}

		_, err := intentRepository.ReadByIntentID(in.IntentID)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrapf(err, "could not read intent %s", in.IntentID)
		}

		intent := models.UniversalIntent{
			IntentID:    in.IntentID,
			Description: in.Description,
			Category:    in.Category,
			Status:      models.IntentStatusPending,
		}
		if err := intentRepository.Save(nil, &intent); err != nil {
			return errors.Wrapf(err, "could not create intent %s", in.IntentID)
		}
	}
	slog.Info("seeded intents", "count", len(catalog.Intents))

	// a hand-edited catalog file may repeat an edge
	crosswalks := utils.UniqueBy(catalog.Crosswalks, func(cw catalogCrosswalk) string {
		return cw.IntentID + "/" + cw.FrameworkCode + "/" + cw.ControlReference
	})

	created := 0
	for _, cw := range crosswalks {
		crosswalk := models.IntentFrameworkCrosswalk{
			IntentID:         cw.IntentID,
			FrameworkCode:    cw.FrameworkCode,
			ControlReference: cw.ControlReference,
		}
		err := crosswalkRepository.Create(nil, &crosswalk)
		if err != nil {
			if shared.IsKind(err, shared.KindIntegrityViolation) {
				continue // already seeded
			}
			return errors.Wrapf(err, "could not create crosswalk %s -> %s/%s", cw.IntentID, cw.FrameworkCode, cw.ControlReference)
		}
		created++
	}
	slog.Info("seeded crosswalks", "created", created, "total", len(crosswalks))

	return nil
}
