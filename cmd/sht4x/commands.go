// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/GermanBionicSystems/sht4x/readout"
	"github.com/GermanBionicSystems/sht4x/sht4x"
	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/physic"
)

func parsePrecision(s string) (sht4x.Operation, error) {
	switch strings.ToLower(s) {
	case "high":
		return sht4x.MeasureHighPrecision, nil
	case "medium":
		return sht4x.MeasureMediumPrecision, nil
	case "low", "lowest":
		return sht4x.MeasureLowestPrecision, nil
	}
	return 0, fmt.Errorf("invalid precision %q, want high, medium or low", s)
}

func parsePower(s string) (sht4x.HeaterPower, error) {
	switch strings.TrimSuffix(strings.ToLower(s), "mw") {
	case "20":
		return sht4x.Power20mW, nil
	case "110":
		return sht4x.Power110mW, nil
	case "200":
		return sht4x.Power200mW, nil
	}
	return 0, fmt.Errorf("invalid heater power %q, want 20, 110 or 200", s)
}

func parseDuration(s string) (sht4x.HeaterDuration, error) {
	switch strings.ToLower(s) {
	case "100ms", "0.1s":
		return sht4x.Duration100ms, nil
	case "1s", "1000ms":
		return sht4x.Duration1s, nil
	}
	return 0, fmt.Errorf("invalid heater duration %q, want 100ms or 1s", s)
}

func newMeasureCmd(g *globalFlags) *cobra.Command {
	var (
		precision string
		ticks     bool
		pngPath   string
		title     string
	)
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Take a single shot measurement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := parsePrecision(precision)
			if err != nil {
				return err
			}
			return withDev(g, op, func(dev *sht4x.Dev) error {
				if ticks {
					t, err := dev.MeasureTicks(op)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "temperature=0x%04x humidity=0x%04x\n", t.Temperature, t.Humidity)
					return err
				}
				env := physic.Env{}
				if err := dev.Sense(&env); err != nil {
					return err
				}
				return show(cmd, env, pngPath, title)
			})
		},
	}
	cmd.Flags().StringVar(&precision, "precision", "high", "Repeatability: high, medium or low")
	cmd.Flags().BoolVar(&ticks, "ticks", false, "Print the raw ticks instead of physical units")
	cmd.Flags().StringVar(&pngPath, "png", "", "Also render the reading to this PNG file")
	cmd.Flags().StringVar(&title, "title", "sht4x", "Title drawn on the PNG card")
	return cmd
}

func newHeaterCmd(g *globalFlags) *cobra.Command {
	var power, duration string
	cmd := &cobra.Command{
		Use:   "heater",
		Short: "Pulse the heater and read the sensor once it turns off",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePower(power)
			if err != nil {
				return err
			}
			d, err := parseDuration(duration)
			if err != nil {
				return err
			}
			return withDev(g, sht4x.MeasureHighPrecision, func(dev *sht4x.Dev) error {
				env, err := dev.SetHeater(p, d)
				if err != nil {
					return err
				}
				return show(cmd, env, "", "")
			})
		},
	}
	cmd.Flags().StringVar(&power, "power", "20", "Heater power in mW: 20, 110 or 200")
	cmd.Flags().StringVar(&duration, "duration", "100ms", "Heater duration: 100ms or 1s")
	return cmd
}

func newSerialCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serial",
		Short: "Print the factory serial number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDev(g, sht4x.MeasureHighPrecision, func(dev *sht4x.Dev) error {
				sn, err := dev.SerialNumber()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "0x%08x\n", sn)
				return err
			})
		},
	}
}

func newResetCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Issue a soft reset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDev(g, sht4x.MeasureHighPrecision, func(dev *sht4x.Dev) error {
				return dev.Reset()
			})
		},
	}
}

// show prints env as a gauge and optionally renders it to a PNG file.
func show(cmd *cobra.Command, env physic.Env, pngPath, title string) error {
	if err := readout.NewGauge(cmd.OutOrStdout(), nil).Write(env); err != nil {
		return err
	}
	if pngPath == "" {
		return nil
	}
	card, err := readout.NewCard(env, title, 128, 64)
	if err != nil {
		return err
	}
	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := card.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
