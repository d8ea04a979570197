// cmd/tools/seed-updater/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"activity-registry/pkg/seedfile"
)

var seedPath string

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// Add command flags
	nameAdd := addCmd.String("name", "", "Activity name (e.g., \"Chess Club\")")
	description := addCmd.String("description", "", "Description")
	schedule := addCmd.String("schedule", "", "Schedule (e.g., \"Fridays, 3:30 PM - 5:00 PM\")")
	maxParticipants := addCmd.Int("max", 0, "Maximum number of participants")
	addCmd.StringVar(&seedPath, "path", "configs/activities.json", "Path to seed file")

	// Update command flags
	nameUpdate := updateCmd.String("name", "", "Activity name to update")
	field := updateCmd.String("field", "", "Field to update (description, schedule, max)")
	value := updateCmd.String("value", "", "New value for the field")
	updateCmd.StringVar(&seedPath, "path", "configs/activities.json", "Path to seed file")

	// Validate command flags
	validateCmd.StringVar(&seedPath, "path", "configs/activities.json", "Path to seed file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add":
		addCmd.Parse(os.Args[2:])
		if *nameAdd == "" || *description == "" || *schedule == "" || *maxParticipants <= 0 {
			fmt.Println("Error: name, description, schedule, and a positive max are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		activity := seedfile.SeedActivity{
			Name:            *nameAdd,
			Description:     *description,
			Schedule:        *schedule,
			MaxParticipants: *maxParticipants,
			Participants:    []string{},
		}
		if err := addActivity(&activity); err != nil {
			fmt.Printf("Error adding activity: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added activity: %s\n", *nameAdd)

	case "update":
		updateCmd.Parse(os.Args[2:])
		if *nameUpdate == "" || *field == "" || *value == "" {
			fmt.Println("Error: name, field, and value are required for update.")
			updateCmd.Usage()
			os.Exit(1)
		}
		if err := updateActivity(*nameUpdate, *field, *value); err != nil {
			fmt.Printf("Error updating activity: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Updated activity %s, field %s to %s\n", *nameUpdate, *field, *value)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		if err := validateSeed(); err != nil {
			fmt.Printf("Seed validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Seed validation passed.")

	case "help":
		fallthrough
	default:
		help()
	}
}

func addActivity(activity *seedfile.SeedActivity) error {
	sf, err := seedfile.Load(seedPath)
	if err != nil {
		// If file doesn't exist, create a new seed document
		if errors.Is(err, os.ErrNotExist) {
			sf = &seedfile.SeedFile{
				Version:    "1.0.0",
				Activities: []seedfile.SeedActivity{},
			}
		} else {
			return fmt.Errorf("failed to load seed file: %w", err)
		}
	}

	for _, existing := range sf.Activities {
		if existing.Name == activity.Name {
			return fmt.Errorf("activity %q already exists", activity.Name)
		}
	}

	sf.Activities = append(sf.Activities, *activity)
	sf.LastUpdated = time.Now().Format(time.RFC3339)

	return save(sf)
}

func updateActivity(name, field, value string) error {
	sf, err := seedfile.Load(seedPath)
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}

	found := false
	for i := range sf.Activities {
		if sf.Activities[i].Name == name {
			found = true
			switch field {
			case "description":
				sf.Activities[i].Description = value
			case "schedule":
				sf.Activities[i].Schedule = value
			case "max":
				max, err := strconv.Atoi(value)
				if err != nil || max <= 0 {
					return fmt.Errorf("invalid max value: %s", value)
				}
				sf.Activities[i].MaxParticipants = max
			default:
				return fmt.Errorf("unknown field: %s", field)
			}
			break
		}
	}

	if !found {
		return fmt.Errorf("activity %q not found", name)
	}

	sf.LastUpdated = time.Now().Format(time.RFC3339)
	return save(sf)
}

func validateSeed() error {
	sf, err := seedfile.Load(seedPath)
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}

	if len(sf.Activities) == 0 {
		return fmt.Errorf("seed file contains no activities")
	}

	fmt.Printf("Found %d activities.\n", len(sf.Activities))
	return nil
}

func save(sf *seedfile.SeedFile) error {
	dir := filepath.Dir(seedPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return seedfile.Save(seedPath, sf)
}

func help() {
	fmt.Println(`
Usage: seed-updater <command> [flags]

Commands:
  add      Add a new activity to the seed file
  update   Update an existing activity's field
  validate Validate the seed file
  help     Show this help message

Examples:
  seed-updater add -name "Chess Club" -description "Learn strategies and compete in chess tournaments" -schedule "Fridays, 3:30 PM - 5:00 PM" -max 12
  seed-updater update -name "Chess Club" -field max -value 16
  seed-updater validate -path configs/activities.json

Use 'seed-updater <command> -h' for more information about a command.`)
}
