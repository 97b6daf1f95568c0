// Package importer reads and writes user backup files: a single JSON
// document holding the profile, the current protocol, and the study history.
// The layout matches the remote store's document schema so a backup can seed
// either side.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// BackupSchema is the top-level JSON structure of a backup file.
type BackupSchema struct {
	UserDNA *ProfileImport       `json:"userDNA"`
	Tasks   []TaskImport         `json:"tasks,omitempty"`
	History map[string]DayImport `json:"history,omitempty"`
}

// ProfileImport defines the profile section of the backup file.
type ProfileImport struct {
	Goal struct {
		Exam  string `json:"exam"`
		Date  string `json:"date,omitempty"`
		Stage string `json:"stage,omitempty"`
	} `json:"goal"`
	Level    string `json:"level"`
	Subjects struct {
		Weak    []string `json:"weak,omitempty"`
		Average []string `json:"average,omitempty"`
		Strong  []string `json:"strong,omitempty"`
	} `json:"subjects"`
	Schedule struct {
		Hours      int    `json:"hours,omitempty"`
		Chronotype string `json:"chronotype,omitempty"`
	} `json:"schedule"`
	Gamification struct {
		Points              int      `json:"points"`
		Badges              []string `json:"badges,omitempty"`
		TotalTasksCompleted int      `json:"totalTasksCompleted"`
	} `json:"gamification"`
	Progress map[string][]string `json:"progress,omitempty"`
}

// TaskImport defines one protocol task in the backup file.
type TaskImport struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Duration int    `json:"duration"`
	Priority string `json:"priority,omitempty"`
	Meta     *struct {
		Type       string `json:"type,omitempty"`
		Strategy   string `json:"strategy,omitempty"`
		TopicID    string `json:"topicId,omitempty"`
		SubjectKey string `json:"subjectKey,omitempty"`
	} `json:"meta,omitempty"`
	Completed bool   `json:"completed"`
	Created   string `json:"created,omitempty"`
}

// DayImport defines one history entry in the backup file.
type DayImport struct {
	Status  string `json:"status"`
	Type    string `json:"type,omitempty"`
	Percent int    `json:"percent"`
}

// LoadBackupSchema reads and parses a backup JSON file.
func LoadBackupSchema(path string) (*BackupSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema BackupSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing backup file: %w", err)
	}
	return &schema, nil
}

// WriteBackupSchema writes the backup as indented JSON.
func WriteBackupSchema(path string, schema *BackupSchema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing backup file: %w", err)
	}
	return nil
}
