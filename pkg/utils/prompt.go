package utils

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// SelectScene picks one of the discovered scenes. Interactive runs get a
// survey prompt; with SPH_SIM_SKIP_PROMPTS=true (for CI/automation) the
// choice comes from SPH_SIM_SCENE or, failing that, the only scene there is.
func SelectScene(scenes []SceneInfo) (*SceneInfo, error) {
	if len(scenes) == 0 {
		return nil, fmt.Errorf("no scenes to select from")
	}

	if name := os.Getenv("SPH_SIM_SCENE"); name != "" {
		for i := range scenes {
			if scenes[i].Catalog.Name == name {
				return &scenes[i], nil
			}
		}
		return nil, fmt.Errorf("scene %s not found in workspace", name)
	}

	if os.Getenv("SPH_SIM_SKIP_PROMPTS") == "true" {
		if len(scenes) == 1 {
			return &scenes[0], nil
		}
		return nil, fmt.Errorf("multiple scenes available and prompts are disabled; set SPH_SIM_SCENE")
	}

	options := make([]string, len(scenes))
	for i, s := range scenes {
		label := s.Catalog.Name
		if s.Catalog.Description != "" {
			label = fmt.Sprintf("%s - %s", s.Catalog.Name, s.Catalog.Description)
		}
		options[i] = label
	}

	var index int
	prompt := &survey.Select{
		Message: "Select a scene:",
		Options: options,
	}
	if err := survey.AskOne(prompt, &index); err != nil {
		return nil, err
	}

	return &scenes[index], nil
}
