package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/markb/fbwire"
)

var infoCmd = &cobra.Command{
	Use:   "info <hex>",
	Short: "Parse an info buffer dump",
	Long: `Parses a hex-encoded engine info buffer and prints each item cluster with
its code, payload length and decoded integer value.

Example:
  fbwire info 040200030001`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := strings.NewReplacer(" ", "", "\n", "").Replace(args[0])
		buf, err := hex.DecodeString(raw)
		if err != nil {
			return fmt.Errorf("bad hex input: %w", err)
		}

		return fbwire.ParseInfoBuffer(buf, func(item byte, payload []byte) error {
			fmt.Printf("item %3d  length %3d  value %d\n", item, len(payload), fbwire.PortableInteger(payload))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
