package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	mapFixture  string
	mapWidth    int
	mapHeight   int
	clusterSize int
	jsonOut     bool
	verbose     bool
)

// rootCmd is the base command when tidepathctl is called without a subcommand.
var rootCmd = &cobra.Command{
	Use:          "tidepathctl",
	Short:        "Demo CLI for the tidepath naval pathfinding library",
	SilenceUsage: true,
	Long: `tidepathctl drives tidepath against a synthetic terrain fixture, since
the real terrain bitmap loader is an external collaborator this library
does not provide.

Examples:
  tidepathctl find-path --fixture coast --from 0,0 --to 15,0
  tidepathctl inspect-gateways --fixture ocean --width 64 --height 64
  tidepathctl component-of --x 4 --y 4

Global Flags:
  --fixture string      Terrain fixture to build: ocean, coast, archipelago
  --width, --height     Fixture dimensions (default 32x32)
  --cluster-size int    Gateway graph cluster size (env: TIDEPATHCTL_CLUSTER_SIZE)
  --json                Output in JSON format
  --verbose             Show detailed debug information`,
}

// Execute adds all child commands to rootCmd and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tidepathctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&mapFixture, "fixture", "ocean", "terrain fixture: ocean, coast, archipelago")
	rootCmd.PersistentFlags().IntVar(&mapWidth, "width", 32, "fixture width in tiles")
	rootCmd.PersistentFlags().IntVar(&mapHeight, "height", 32, "fixture height in tiles")
	rootCmd.PersistentFlags().IntVar(&clusterSize, "cluster-size", 16, "gateway graph cluster size (env: TIDEPATHCTL_CLUSTER_SIZE)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "show detailed debug information")

	viper.BindPFlag("fixture", rootCmd.PersistentFlags().Lookup("fixture"))
	viper.BindPFlag("width", rootCmd.PersistentFlags().Lookup("width"))
	viper.BindPFlag("height", rootCmd.PersistentFlags().Lookup("height"))
	viper.BindPFlag("cluster-size", rootCmd.PersistentFlags().Lookup("cluster-size"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tidepathctl")
	}

	viper.SetEnvPrefix("TIDEPATHCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && isVerbose() {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func isJSONOutput() bool { return viper.GetBool("json") }
func isVerbose() bool    { return viper.GetBool("verbose") }

func currentClusterSize() int { return viper.GetInt("cluster-size") }
func currentFixture() string  { return viper.GetString("fixture") }
func currentWidth() int       { return viper.GetInt("width") }
func currentHeight() int      { return viper.GetInt("height") }
