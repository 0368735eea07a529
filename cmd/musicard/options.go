package main

import (
	"fmt"
	"os"

	"github.com/genricoloni/musicard/internal/domain"
	"gopkg.in/yaml.v3"
)

// cardFile is the YAML form of the card options
type cardFile struct {
	Progress         *float64 `yaml:"progress"`
	ImageDarkness    *float64 `yaml:"imageDarkness"`
	Name             string   `yaml:"name"`
	Author           string   `yaml:"author"`
	StartTime        string   `yaml:"startTime"`
	EndTime          string   `yaml:"endTime"`
	ThumbnailImage   string   `yaml:"thumbnailImage"`
	BackgroundImage  string   `yaml:"backgroundImage"`
	ProgressBarColor string   `yaml:"progressBarColor"`
	ProgressColor    string   `yaml:"progressColor"`
	BackgroundColor  string   `yaml:"backgroundColor"`
	NameColor        string   `yaml:"nameColor"`
	AuthorColor      string   `yaml:"authorColor"`
	TimeColor        string   `yaml:"timeColor"`

	// flag targets for the pointer fields
	progressValue float64
	darknessValue float64
}

func loadCardFile(path string) (cardFile, error) {
	var c cardFile
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("failed to parse options file %s: %w", path, err)
	}
	return c, nil
}

// override copies the flags the user set over c
func (c *cardFile) override(flags cardFile, changed func(string) bool) {
	if changed("progress") {
		c.Progress = domain.Float(flags.progressValue)
	}
	if changed("image-darkness") {
		c.ImageDarkness = domain.Float(flags.darknessValue)
	}

	strs := []struct {
		flag string
		dst  *string
		src  string
	}{
		{"name", &c.Name, flags.Name},
		{"author", &c.Author, flags.Author},
		{"start-time", &c.StartTime, flags.StartTime},
		{"end-time", &c.EndTime, flags.EndTime},
		{"thumbnail", &c.ThumbnailImage, flags.ThumbnailImage},
		{"background", &c.BackgroundImage, flags.BackgroundImage},
		{"progress-bar-color", &c.ProgressBarColor, flags.ProgressBarColor},
		{"progress-color", &c.ProgressColor, flags.ProgressColor},
		{"background-color", &c.BackgroundColor, flags.BackgroundColor},
		{"name-color", &c.NameColor, flags.NameColor},
		{"author-color", &c.AuthorColor, flags.AuthorColor},
		{"time-color", &c.TimeColor, flags.TimeColor},
	}
	for _, s := range strs {
		if changed(s.flag) {
			*s.dst = s.src
		}
	}
}

func (c cardFile) options() domain.CardOptions {
	return domain.CardOptions{
		Progress:         c.Progress,
		ImageDarkness:    c.ImageDarkness,
		Name:             c.Name,
		Author:           c.Author,
		StartTime:        c.StartTime,
		EndTime:          c.EndTime,
		ThumbnailImage:   domain.SourceFromString(c.ThumbnailImage),
		BackgroundImage:  domain.SourceFromString(c.BackgroundImage),
		ProgressBarColor: c.ProgressBarColor,
		ProgressColor:    c.ProgressColor,
		BackgroundColor:  c.BackgroundColor,
		NameColor:        c.NameColor,
		AuthorColor:      c.AuthorColor,
		TimeColor:        c.TimeColor,
	}
}
