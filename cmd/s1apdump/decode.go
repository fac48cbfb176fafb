package main

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	s1apgo "github.com/thebagchi/s1ap-go"
	"github.com/thebagchi/s1ap-go/lib/per"
	"github.com/thebagchi/s1ap-go/lib/s1ap"
)

var decodeCmd = &cobra.Command{
	Use:     "decode",
	Short:   "Decode S1AP PDUs and print their IEs",
	Example: "s1apdump decode --hex 20110025000003003d400a03807372736d6d6530310069000b000000f11000000100001a00574001ff",
	RunE:    decodeFunc,
}

func init() {
	decodeCmd.Flags().String("hex", "", "hex encoded PDU")
	decodeCmd.Flags().StringP("file", "f", "", "file with one hex encoded PDU per line")
	decodeCmd.MarkFlagsOneRequired("hex", "file")
	decodeCmd.MarkFlagsMutuallyExclusive("hex", "file")
	rootCmd.AddCommand(decodeCmd)
}

func decodeFunc(cmd *cobra.Command, args []string) error {
	input, err := cmd.Flags().GetString("hex")
	if err != nil {
		return err
	}
	filename, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}

	var pdus [][]byte
	if len(filename) > 0 {
		if pdus, err = s1apgo.Parse(filename); err != nil {
			return err
		}
	} else {
		pdus, err = s1apgo.ParseReader(strings.NewReader(input))
		if err != nil {
			return err
		}
	}

	failed := 0
	for i, data := range pdus {
		pdu, err := s1ap.Unmarshal(data)
		render(cmd.OutOrStdout(), i+1, data, pdu)
		if err != nil {
			failed++
			log.Error("PDU %d: %v", i+1, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d PDUs failed to decode", failed, len(pdus))
	}
	return nil
}

// render prints whatever part of pdu was decoded.
func render(out io.Writer, index int, data []byte, pdu *s1ap.PDU) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle("PDU %d: %s, %s", index, pdu, humanize.Bytes(uint64(len(data))))
	t.AppendHeader(table.Row{"ID", "Name", "Criticality", "Size", "Value"})
	if pdu.Value != nil {
		set := pdu.Value.ObjectSet()
		for _, field := range pdu.Value.Fields() {
			desc, _ := set.Lookup(field.ID)
			size := "-"
			if encoded, err := per.Marshal(field.Value, s1ap.Variant); err == nil {
				size = humanize.Bytes(uint64(len(encoded)))
			}
			t.AppendRow(table.Row{field.ID, desc.Name, desc.Criticality, size, describe(field.Value)})
		}
	}
	t.Render()

	if pdu.Value == nil || pdu.Value.CriticalityReport().Empty() {
		return
	}
	r := table.NewWriter()
	r.SetOutputMirror(out)
	r.SetTitle("Criticality report")
	r.AppendHeader(table.Row{"ID", "Criticality", "Type of error"})
	for _, item := range pdu.Value.CriticalityReport().Items {
		r.AppendRow(table.Row{item.ID, item.Criticality, item.TypeOfError})
	}
	r.Render()
}

func describe(value per.Value) string {
	if v, ok := value.(fmt.Stringer); ok {
		return v.String()
	}
	return fmt.Sprintf("%+v", reflect.Indirect(reflect.ValueOf(value)))
}
