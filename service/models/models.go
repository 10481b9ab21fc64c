package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pitabwire/frame/data"
)

// ID is an opaque entity identifier. Callers supply identifiers either as
// JSON strings or as JSON numbers, so comparisons always go through the
// normalized form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}

	*id = ID(n.String())
	return nil
}

// Normalized collapses numeric and string forms of the same identifier to
// one canonical representation.
func (id ID) Normalized() string {
	s := strings.TrimSpace(string(id))
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(n, 10)
	}
	return s
}

func (id ID) Equal(other ID) bool {
	return id.Normalized() == other.Normalized()
}

func (id ID) IsEmpty() bool {
	return strings.TrimSpace(string(id)) == ""
}

func (id ID) String() string {
	return string(id)
}

// ChannelRolePair is the caller supplied target of one channel role
// assignment. It is never persisted directly, only through a ChannelRole.
type ChannelRolePair struct {
	ChannelID ID `json:"channelId"`
	RoleID    ID `json:"roleId"`
}

// Key identifies the pair within a reconciliation diff.
func (p ChannelRolePair) Key() string {
	return p.ChannelID.Normalized() + "/" + p.RoleID.Normalized()
}

// PermissionList stores a role's permission codes as a json array column.
type PermissionList []string

func (p PermissionList) Value() (driver.Value, error) {
	if p == nil {
		p = PermissionList{}
	}
	return json.Marshal(p)
}

func (p *PermissionList) Scan(src any) error {
	if src == nil {
		*p = nil
		return nil
	}

	var source []byte
	switch v := src.(type) {
	case []byte:
		source = v
	case string:
		source = []byte(v)
	default:
		return errors.New("incompatible type for PermissionList")
	}

	if len(source) == 0 {
		*p = nil
		return nil
	}

	return json.Unmarshal(source, p)
}

// AdminUser is an administrator account holding channel scoped roles.
type AdminUser struct {
	data.BaseModel

	Identifier string `gorm:"type:varchar(255);uniqueIndex"`

	Properties data.JSONMap
}

// Channel is a sales context scoping boundary, e.g. a storefront or region.
type Channel struct {
	data.BaseModel

	Token string `gorm:"type:varchar(255);uniqueIndex"`
	Code  string `gorm:"type:varchar(255)"`

	Properties data.JSONMap
}

// Role names a permission set.
type Role struct {
	data.BaseModel

	Name        string         `gorm:"type:varchar(255)"`
	Permissions PermissionList `gorm:"type:jsonb"`
}

// ChannelRole links one user to one role within one channel. The triple is
// not globally unique; within a reconciliation the (channel, role) pairs of
// a user are treated as a set.
type ChannelRole struct {
	data.BaseModel

	UserID string    `gorm:"type:varchar(50);index:idx_channel_roles_user_id"`
	User   AdminUser

	ChannelID string `gorm:"type:varchar(50)"`
	Channel   Channel

	RoleID string `gorm:"type:varchar(50)"`
	Role   Role
}

// PairKey is the diff key of the persisted assignment, comparable with
// ChannelRolePair.Key.
func (cr *ChannelRole) PairKey() string {
	return ID(cr.ChannelID).Normalized() + "/" + ID(cr.RoleID).Normalized()
}
