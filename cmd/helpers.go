package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chatnav/internal/config"
	"chatnav/internal/element"
	"chatnav/internal/finder"
	"chatnav/internal/remote"
	"chatnav/internal/walk"
)

const defaultConfigFile = "chatnav.yaml"

// elementInfo is a compact serialized view of a located element.
type elementInfo struct {
	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	Role      string `yaml:"role"           json:"role"`
	Focusable bool   `yaml:"focusable"      json:"focusable"`
	Class     string `yaml:"class,omitempty" json:"class,omitempty"`
	Value     string `yaml:"value,omitempty" json:"value,omitempty"`
}

func describeHandle(h element.Handle) elementInfo {
	return elementInfo{
		Name:      h.Name(),
		Role:      h.Role().String(),
		Focusable: h.States().Has(element.StateFocusable),
		Class:     h.ClassName(),
		Value:     h.Value(),
	}
}

// resolveDebuggerURL picks the debugger URL, preferring the flag, then the
// environment, then the config file. Empty means launch a local instance.
func resolveDebuggerURL(flagVal, envVal, cfgVal string) string {
	if flagVal != "" {
		return flagVal
	}
	if envVal != "" {
		return envVal
	}
	return cfgVal
}

// newEngine connects to the target app and builds a finder engine from the
// resolved config. The returned func releases the remote session.
func newEngine(cmd *cobra.Command) (*finder.Engine, func(), error) {
	cfgPath, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgPath == "" {
		cfgPath = defaultConfigFile
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	flagURL, _ := rootCmd.PersistentFlags().GetString("debugger-url")
	raw, _ := rootCmd.PersistentFlags().GetBool("raw")

	sess, err := remote.Connect(remote.Options{
		DebuggerURL: resolveDebuggerURL(flagURL, os.Getenv("CHATNAV_DEBUGGER_URL"), cfg.DebuggerURL),
		AppTitle:    cfg.AppTitle,
		Raw:         raw,
		Logger:      logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to app: %w", err)
	}

	pats := cfg.Patterns
	eng := finder.New(sess, finder.Config{
		Logger:   logger,
		Patterns: &pats,
		CacheTTL: cfg.CacheTTL(),
		Walk: walk.Options{
			MaxDepth: cfg.WalkMaxDepth,
			Timeout:  cfg.WalkTimeout(),
		},
	})
	return eng, sess.Close, nil
}
