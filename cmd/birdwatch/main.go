/*
birdwatch extracts a bounded number of posts from a social media profile
page by driving a browser, scrolling to trigger lazy-loaded content and
parsing the rendered post elements.

Have a look at the README.md for more information.
*/
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"birdwatch/internal/command"
	"birdwatch/internal/log"
	"birdwatch/internal/output"
	"birdwatch/internal/scrape"

	"github.com/alecthomas/kong"
)

var version = "dev"

type VersionFlag string

func (v VersionFlag) Decode(_ *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                       { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

type cli struct {
	Command string      `arg:"" help:"Free-text scrape command, e.g. 'analyze twitter account jack get 5 posts'."`
	Format  string      `default:"json" enum:"json" help:"Output format. Only json is implemented."`
	Config  string      `short:"c" optional:"" help:"Optional configuration file overriding selectors, timeouts, browser and writer settings." completion:"<file>"`
	Out     string      `short:"o" optional:"" help:"Write the result to the given file instead of stdout." completion:"<file>"`
	Debug   bool        `short:"d" help:"Set log level to 'debug'."`
	Version VersionFlag `short:"v" help:"Print the version and exit."`
}

func getVersion() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if ok {
		if buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
			return buildInfo.Main.Version
		}
	}
	return version
}

func main() {
	cli := cli{
		Version: VersionFlag(getVersion()),
	}

	kong.Parse(&cli,
		kong.Vars{
			"version": string(cli.Version),
		})

	log.Debug = cli.Debug
	log.InitializeDefaultLogger()

	req, err := command.Parse(cli.Command)
	if err != nil {
		// invalid commands never launch a browser
		fmt.Println(`{"error": "Invalid command format"}`)
		os.Exit(1)
	}

	config, err := scrape.NewConfig(cli.Config)
	if err != nil {
		slog.Error(fmt.Sprintf("%v", err))
		os.Exit(1)
	}
	if cli.Out != "" {
		config.Writer.Type = output.FILE_WRITER_TYPE
		config.Writer.FilePath = cli.Out
	}

	writer, err := output.NewWriter(&config.Writer)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	slog.Info("starting scraping task",
		slog.String("username", req.Username), slog.Int("posts", req.PostCount))
	s := scrape.New(config, req.Username, req.PostCount)
	result := s.Scrape(context.Background())

	if err := writer.Write(result); err != nil {
		slog.Error(fmt.Sprintf("%v", err))
		os.Exit(1)
	}
}
