package s1ap_go

import (
	"bufio"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads a dump file holding one hex encoded PDU per line.
func Parse(filename string) ([][]byte, error) {
	file, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer file.Close()
	return ParseReader(file)
}

// ParseReader reads hex encoded PDUs, one per line. Blank lines and lines
// starting with # are skipped; spaces and colons between octets are allowed.
func ParseReader(reader io.Reader) ([][]byte, error) {
	var (
		pdus    [][]byte
		line    int
		scanner = bufio.NewScanner(reader)
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 || strings.HasPrefix(text, "#") {
			continue
		}
		text = strings.NewReplacer(" ", "", "\t", "", ":", "").Replace(text)
		data, err := hex.DecodeString(text)
		if nil != err {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		pdus = append(pdus, data)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return pdus, nil
}
