package cli

import "github.com/charmbracelet/huh"

// confirmDestructive gates an irreversible operation behind an
// explicit confirmation. The core mutation functions assume this gate
// has already been satisfied.
func confirmDestructive(app *App, title, description string) (bool, error) {
	if app.AssumeYes {
		return true, nil
	}

	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative("بله").
			Negative("خیر").
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
