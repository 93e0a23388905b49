package sessions

import (
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/exceptions"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

type persistedState struct {
	User            *models.UserProfile `json:"user"`
	IsAuthenticated bool                `json:"is_authenticated"`
}

// stateFileRepository stores the persisted subset as a JSON document keyed
// under the fixed client state key, mirroring how the web frontend keeps it
// in browser storage. IsLoading and Err are never written.
type stateFileRepository struct {
	path string
}

func NewStateFileRepository(path string) contracts.SessionStateRepository {
	return &stateFileRepository{path: path}
}

func (r *stateFileRepository) Load() (*models.UserProfile, bool, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevStateLoad)
	}

	document := map[string]persistedState{}
	if err := json.Unmarshal(raw, &document); err != nil {
		// Corrupt state files degrade to "logged out" instead of failing.
		return nil, false, nil
	}

	state := document[constvars.ClientStateKey]
	return state.User, state.IsAuthenticated, nil
}

func (r *stateFileRepository) Save(user *models.UserProfile, isAuthenticated bool) error {
	document := map[string]persistedState{
		constvars.ClientStateKey: {User: user, IsAuthenticated: isAuthenticated},
	}
	raw, err := json.Marshal(document)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevStatePersist)
	}
	if err := os.WriteFile(r.path, raw, 0o600); err != nil {
		return exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevStatePersist)
	}
	return nil
}

func (r *stateFileRepository) Clear() error {
	err := os.Remove(r.path)
	if err != nil && !os.IsNotExist(err) {
		return exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevStatePersist)
	}
	return nil
}
