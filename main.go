/*
 * ShISA - Main process.
 *
 * Copyright 2026, ShISA contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/shisa-vm/shisa/binary"
	"github.com/shisa-vm/shisa/internal/config"
	"github.com/shisa-vm/shisa/internal/logger"
	"github.com/shisa-vm/shisa/internal/monitor"
	"github.com/shisa-vm/shisa/sim"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "shisa.cfg", "Configuration file")
	optBin := getopt.StringLong("bin", 'b', "", "Binary file to load")
	optEngine := getopt.StringLong("engine", 'e', "switched", "Dispatch variant: switched, subroutined, predecoded, predecoded-subroutined")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optMonitor := getopt.BoolLong("monitor", 'm', "Start the interactive monitor instead of running to completion")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	if cfg, ok := loadConfig(*optConfig); ok {
		if !getopt.Lookup('b').Seen() && cfg.Bin != "" {
			*optBin = cfg.Bin
		}
		if !getopt.Lookup('e').Seen() && cfg.Engine != "" {
			*optEngine = cfg.Engine
		}
		if !getopt.Lookup('l').Seen() && cfg.Log != "" {
			*optLogFile = cfg.Log
		}
	}

	var logOut io.Writer
	if *optLogFile != "" {
		f, err := os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "shisa:", err)
			os.Exit(1)
		}
		logOut = f
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger = slog.New(logger.New(logOut, &slog.HandlerOptions{Level: programLevel}, false))
	slog.SetDefault(Logger)

	Logger.Info("ShISA started")

	if *optBin == "" {
		Logger.Error("no binary specified, use --bin")
		os.Exit(1)
	}

	variant, err := parseVariant(*optEngine)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	bin, err := loadBinary(*optBin)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	eng := sim.New(variant, bin)

	if *optMonitor {
		monitor.New(eng, os.Stdout).Run()
		return
	}

	if err := eng.ExecuteAll(); err != nil {
		Logger.Error(err.Error())
		eng.State().Dump(os.Stdout)
		os.Exit(1)
	}
	eng.State().Dump(os.Stdout)
}

func loadConfig(path string) (config.Config, bool) {
	f, err := os.Open(path)
	if err != nil {
		return config.Config{}, false
	}
	defer f.Close()

	cfg, err := config.Parse(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "shisa: config:", err)
		return config.Config{}, false
	}
	return cfg, true
}

func loadBinary(path string) (binary.Binary, error) {
	f, err := os.Open(path)
	if err != nil {
		return binary.Binary{}, err
	}
	defer f.Close()
	return binary.ReadText(f)
}

func parseVariant(name string) (sim.Variant, error) {
	v := sim.Variant(name)
	for _, known := range sim.Variants {
		if v == known {
			return v, nil
		}
	}
	return "", errors.New("unknown engine variant: " + name)
}
