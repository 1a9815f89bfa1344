package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/markb/fbwire"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Print the wire type table",
	Long:  `Prints every wire type code this library knows, with its SQL name, natural byte size and alignment.`,
	Run: func(cmd *cobra.Command, args []string) {
		all := []fbwire.Type{
			fbwire.TypeVarying,
			fbwire.TypeText,
			fbwire.TypeDouble,
			fbwire.TypeFloat,
			fbwire.TypeLong,
			fbwire.TypeShort,
			fbwire.TypeTimestamp,
			fbwire.TypeBlob,
			fbwire.TypeDFloat,
			fbwire.TypeArray,
			fbwire.TypeQuad,
			fbwire.TypeTime,
			fbwire.TypeDate,
			fbwire.TypeInt64,
			fbwire.TypeTimestampTZEx,
			fbwire.TypeTimeTZEx,
			fbwire.TypeInt128,
			fbwire.TypeTimestampTZ,
			fbwire.TypeTimeTZ,
			fbwire.TypeDec16,
			fbwire.TypeDec34,
			fbwire.TypeBoolean,
			fbwire.TypeNull,
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tSIZE\tALIGN")
		for _, t := range all {
			size := "-"
			if s := t.Size(); s > 0 {
				size = fmt.Sprintf("%d", s)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", uint32(t), t, size, t.Alignment())
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
