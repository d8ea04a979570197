package registry

// DefaultActivities returns the built-in Mergington High seed set, used
// when no seed file is configured.
func DefaultActivities() []Activity {
	return []Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Competitive basketball training and tournaments",
			Schedule:        "Mondays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{},
		},
		{
			Name:            "Tennis Club",
			Description:     "Learn tennis techniques and compete in matches",
			Schedule:        "Wednesdays and Saturdays, 3:00 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{},
		},
		{
			Name:            "Drama Club",
			Description:     "Perform in theatrical productions and develop acting skills",
			Schedule:        "Tuesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{},
		},
		{
			Name:            "Art Studio",
			Description:     "Explore painting, drawing, and sculpture techniques",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{},
		},
		{
			Name:            "Debate Team",
			Description:     "Develop argumentation and public speaking skills",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 16,
			Participants:    []string{},
		},
		{
			Name:            "Robotics Club",
			Description:     "Build and program robots for competitions",
			Schedule:        "Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 14,
			Participants:    []string{},
		},
	}
}
