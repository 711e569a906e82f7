package permissions

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var ErrDuplicateEndpoint = errors.New("duplicate endpoint permission")

// Permission lists the roles or departments allowed on one chi route pattern.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	byRoute map[string]Permission
}

func routeKey(path, method string) string {
	return strings.ToUpper(method) + " " + path
}

// FindPermissions returns the zero Permission for a route that is not listed.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	return r.byRoute[routeKey(path, method)]
}

// Load decodes a permission table. Each method and path pair may appear once.
func Load(raw []byte) (*PermissionData, error) {
	var data PermissionData

	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	data.byRoute = make(map[string]Permission, len(data.Endpoints))

	for _, endpoint := range data.Endpoints {
		key := routeKey(endpoint.Path, endpoint.Method)
		if _, exists := data.byRoute[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEndpoint, key)
		}

		data.byRoute[key] = endpoint
	}

	return &data, nil
}

func Get() *PermissionData {
	permissions, err := Load(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
