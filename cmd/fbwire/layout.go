package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/markb/fbwire"
	"github.com/markb/fbwire/internal/log"
)

// typeNames maps the spellings the layout command accepts to wire types.
var typeNames = map[string]fbwire.Type{
	"bool":        fbwire.TypeBoolean,
	"boolean":     fbwire.TypeBoolean,
	"smallint":    fbwire.TypeShort,
	"int":         fbwire.TypeLong,
	"integer":     fbwire.TypeLong,
	"bigint":      fbwire.TypeInt64,
	"int128":      fbwire.TypeInt128,
	"float":       fbwire.TypeFloat,
	"double":      fbwire.TypeDouble,
	"dec16":       fbwire.TypeDec16,
	"dec34":       fbwire.TypeDec34,
	"char":        fbwire.TypeText,
	"varchar":     fbwire.TypeVarying,
	"blob":        fbwire.TypeBlob,
	"date":        fbwire.TypeDate,
	"time":        fbwire.TypeTime,
	"timetz":      fbwire.TypeTimeTZ,
	"timestamp":   fbwire.TypeTimestamp,
	"timestamptz": fbwire.TypeTimestampTZ,
}

var layoutCmd = &cobra.Command{
	Use:   "layout type[:length[:scale]] ...",
	Short: "Compute a message layout",
	Long: `Computes offsets, null indicator offsets and the total message length for
the given column types using the standard layout rules.

Example:
  fbwire layout varchar:20 bigint:0:-3 bool timestamp`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slots := make([]fbwire.Slot, 0, len(args))
		for _, arg := range args {
			slot, err := parseSlotSpec(arg)
			if err != nil {
				return err
			}
			slots = append(slots, slot)
		}

		desc, err := fbwire.StandardLayout{}.Resolve(slots)
		if err != nil {
			return fmt.Errorf("failed to resolve layout: %w", err)
		}
		log.Debug("layout resolved", "slots", desc.Count(), "length", desc.MessageLength())

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SLOT\tTYPE\tLENGTH\tSCALE\tOFFSET\tNULL_OFFSET")
		for i := 0; i < desc.Count(); i++ {
			s, _ := desc.Slot(i)
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\n", i, s.Type, s.Length, s.Scale, s.Offset, s.NullOffset)
		}
		w.Flush()
		fmt.Printf("message length: %d bytes\n", desc.MessageLength())

		return nil
	},
}

// parseSlotSpec parses "type[:length[:scale]]", e.g. "varchar:20" or
// "bigint:0:-3".
func parseSlotSpec(spec string) (fbwire.Slot, error) {
	parts := strings.Split(spec, ":")
	t, ok := typeNames[strings.ToLower(parts[0])]
	if !ok {
		return fbwire.Slot{}, fmt.Errorf("unknown type %q", parts[0])
	}

	slot := fbwire.Slot{Type: t, Nullable: true}
	if len(parts) > 1 && parts[1] != "" {
		length, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return fbwire.Slot{}, fmt.Errorf("bad length in %q: %w", spec, err)
		}
		slot.Length = uint32(length)
	}
	if len(parts) > 2 {
		scale, err := strconv.ParseInt(parts[2], 10, 16)
		if err != nil {
			return fbwire.Slot{}, fmt.Errorf("bad scale in %q: %w", spec, err)
		}
		slot.Scale = int16(scale)
	}

	return slot, nil
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
