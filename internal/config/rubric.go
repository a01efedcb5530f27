package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"alfredoptarigan/hr-helper/internal/models"
)

// NewRubricViper prepares a viper instance for a rubric file with the
// default rubric registered, so partial files only override what they name.
func NewRubricViper(path string) *viper.Viper {
	def := models.DefaultRubricForm()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("job_title", def.JobTitle)
	v.SetDefault("min_education", def.MinEducation)
	v.SetDefault("min_work_exp", def.MinWorkExp)
	v.SetDefault("min_org_exp", def.MinOrgExp)
	v.SetDefault("hard_skills", def.HardSkills)
	v.SetDefault("soft_skills", def.SoftSkills)
	v.SetDefault("weights.edu", def.Weights.Edu)
	v.SetDefault("weights.work", def.Weights.Work)
	v.SetDefault("weights.org", def.Weights.Org)
	v.SetDefault("weights.hard", def.Weights.Hard)
	v.SetDefault("weights.soft", def.Weights.Soft)
	return v
}

// LoadRubric reads and validates the rubric file behind v.
func LoadRubric(v *viper.Viper) (models.RubricForm, error) {
	var form models.RubricForm

	if err := v.ReadInConfig(); err != nil {
		return form, fmt.Errorf("failed to read rubric file: %w", err)
	}
	if err := v.Unmarshal(&form); err != nil {
		return form, fmt.Errorf("failed to decode rubric file: %w", err)
	}
	if err := form.Validate(); err != nil {
		return form, err
	}
	return form, nil
}

// WatchRubric calls onChange with every valid revision of the rubric file
// and onError with every rejected one.
func WatchRubric(v *viper.Viper, onChange func(models.RubricForm), onError func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		form, err := LoadRubric(v)
		if err != nil {
			onError(err)
			return
		}
		onChange(form)
	})
	v.WatchConfig()
}
