package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedProfile is the player data stored on disk between runs.
type SavedProfile struct {
	Name string `json:"name"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for profile storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "airhockey-mp",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProfile loads the saved profile from disk, or nil when none exists.
func LoadProfile() (*SavedProfile, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("profile")
	if err != nil {
		log.Printf("Warning: Could not load profile: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var profile SavedProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		log.Printf("Warning: Could not parse saved profile: %v", err)
		return nil, err
	}

	return &profile, nil
}

// SaveProfile saves the profile to disk.
func SaveProfile(p *SavedProfile) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize profile: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("profile", data); err != nil {
		log.Printf("Warning: Could not save profile: %v", err)
		return err
	}
	return nil
}
