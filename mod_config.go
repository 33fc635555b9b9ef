package studio

import (
	"github.com/gekko3d/studio/config"
)

// ConfigModule shares the loaded preferences. With Path set they are written
// back when the app finishes, after the editor has copied its display flags in.
type ConfigModule struct {
	Config config.Config
	Path   string
}

func (mod ConfigModule) Install(app *App, cmd *Commands) {
	cfg := mod.Config
	cmd.AddResources(&cfg)
	if mod.Path == "" {
		return
	}
	logger := namedLogger(app.Logger(), "config")
	app.OnClose(func() {
		if err := cfg.Save(mod.Path); err != nil {
			logger.Errorf("save preferences: %v", err)
			return
		}
		logger.Debugf("preferences written to %s", mod.Path)
	})
}
