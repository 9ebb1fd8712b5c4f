package matches

import "github.com/joefazee/fairway/models"

// Config represents the configuration for the matches module
type Config struct {
	MaxParticipants  int `env:"MAX_MATCH_PARTICIPANTS"`
	MaxCourseNameLen int `env:"MAX_COURSE_NAME_LENGTH"`
}

func (c *Config) Validate() error {
	if c.MaxParticipants < 2 {
		return models.ErrInvalidParticipantLimit
	}
	if c.MaxCourseNameLen < 1 {
		return models.ErrInvalidCourseName
	}
	return nil
}

// GetDefaultConfig returns the default matches configuration
func GetDefaultConfig() *Config {
	return &Config{
		MaxParticipants:  8,
		MaxCourseNameLen: 120,
	}
}
