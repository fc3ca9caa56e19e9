package main

import (
	"github.com/aleister1102/faultyurls/internal/config"
	"github.com/spf13/pflag"
)

// AppFlags holds the command line as given.
type AppFlags struct {
	InputFile       string
	OutputDirectory string
	FilePrefix      string
	ConfigFile      string
	ArchivePath     string
	Verbose         int
	Strict          bool
	NormalizeURLs   bool
}

func bindFlags(fs *pflag.FlagSet, flags *AppFlags) {
	fs.StringVarP(&flags.InputFile, "input-file", "i", "", "Input JMeter CSV log file to read data from")
	fs.StringVarP(&flags.OutputDirectory, "output-directory", "o", "", "Output directory to store faulty URLs (default: current directory)")
	fs.StringVarP(&flags.FilePrefix, "file-prefix", "p", "", "Output file prefix, e.g. -p 'hostA-' saves all 400s in hostA-400.errors")
	fs.StringVarP(&flags.ConfigFile, "config", "c", "", "Path to a YAML/JSON configuration file")
	fs.StringVar(&flags.ArchivePath, "archive", "", "Also write every (label, URL) pair to this Parquet file")
	fs.CountVarP(&flags.Verbose, "verbose", "v", "Increase verbosity (specify multiple times for more)")
	fs.BoolVar(&flags.Strict, "strict", false, "Abort on the first malformed row instead of skipping it")
	fs.BoolVar(&flags.NormalizeURLs, "normalize-urls", false, "Normalize URLs before de-duplication")
}

// applyOverrides copies explicitly set flags over the loaded configuration.
func applyOverrides(fs *pflag.FlagSet, flags AppFlags, cfg *config.GlobalConfig) {
	if fs.Changed("output-directory") {
		cfg.OutputConfig.Directory = flags.OutputDirectory
	}
	if fs.Changed("file-prefix") {
		cfg.OutputConfig.FilePrefix = flags.FilePrefix
	}
	if fs.Changed("archive") {
		cfg.ArchiveConfig.Path = flags.ArchivePath
	}
	if fs.Changed("strict") {
		cfg.ExtractorConfig.Strict = flags.Strict
	}
	if fs.Changed("normalize-urls") {
		cfg.ExtractorConfig.NormalizeURLs = flags.NormalizeURLs
	}
}
