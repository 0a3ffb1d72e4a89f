package models

import (
	"github.com/google/uuid"

	databasetypes "github.com/l3montree-dev/crossguard/database/types"
)

// Tenant is a customer of the platform. Callers reference a tenant either by
// Slug or by InternalTenantID, never by the surrogate primary key.
type Tenant struct {
	Model
	Slug             string              `json:"slug" gorm:"type:text;unique;not null;index"`
	InternalTenantID uuid.UUID           `json:"internalTenantId" gorm:"type:uuid;unique;not null;index"`
	Name             string              `json:"name" gorm:"type:text;not null"`
	IsActive         bool                `json:"isActive" gorm:"default:true;not null"`
	EncryptionKey    string              `json:"-" gorm:"type:text"`
	Metadata         databasetypes.JSONB `json:"metadata" gorm:"type:jsonb"`
}

func (m Tenant) TableName() string {
	return "tenants"
}

// TenantFramework is the entitlement edge between a tenant and a framework.
// At most one edge exists per (tenant, framework) pair.
type TenantFramework struct {
	Model
	TenantID    uuid.UUID `json:"tenantId" gorm:"type:uuid;not null;uniqueIndex:idx_tenant_framework"`
	FrameworkID uuid.UUID `json:"frameworkId" gorm:"type:uuid;not null;uniqueIndex:idx_tenant_framework"`
	Framework   Framework `json:"framework" gorm:"foreignKey:FrameworkID;references:ID;constraint:OnDelete:CASCADE;"`
	IsActive    bool      `json:"isActive" gorm:"default:true;not null"`
	IsLocked    bool      `json:"isLocked" gorm:"default:false;not null"`
}

func (m TenantFramework) TableName() string {
	return "tenant_frameworks"
}
