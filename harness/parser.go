package harness

import (
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// xmlTestSuite mirrors the on-disk XML shape. A suite's `name` attribute is
// optional: ParseFile falls back to the file's base name when it's absent,
// so golden files don't have to spell out a name redundant with their path.
type xmlTestSuite struct {
	XMLName   xml.Name      `xml:"test-suite"`
	Name      string        `xml:"name,attr"`
	TestCases []xmlTestCase `xml:"test-case"`
}

type xmlTestCase struct {
	Name     string `xml:"name,attr"`
	Script   string `xml:"script"`
	Status   string `xml:"status"`
	Result   string `xml:"result"`
	Error    string `xml:"error"`
	Stdout   string `xml:"stdout"`
	Stderr   string `xml:"stderr"`
	ExitCode string `xml:"exit-code"`
}

// ParseFile parses a test suite from the given file path, defaulting its
// Name to the file's base name (without extension) when the XML omits a
// `name` attribute.
func ParseFile(path string) (*TestSuite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	suite, err := Parse(f)
	if err != nil {
		return nil, err
	}
	suite.Path = path
	if suite.Name == "" {
		base := filepath.Base(path)
		suite.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return suite, nil
}

// Parse parses a test suite from the given reader.
func Parse(r io.Reader) (*TestSuite, error) {
	var xs xmlTestSuite
	decoder := xml.NewDecoder(r)
	if err := decoder.Decode(&xs); err != nil {
		return nil, err
	}

	suite := &TestSuite{
		Name:  xs.Name,
		Cases: make([]TestCase, 0, len(xs.TestCases)),
	}

	for _, xtc := range xs.TestCases {
		exitCode := 0
		if xtc.ExitCode != "" {
			var err error
			exitCode, err = strconv.Atoi(strings.TrimSpace(xtc.ExitCode))
			if err != nil {
				return nil, err
			}
		}

		tc := TestCase{
			Name:     xtc.Name,
			Script:   strings.TrimSpace(xtc.Script),
			Status:   strings.TrimSpace(xtc.Status),
			Result:   strings.TrimSpace(xtc.Result),
			Error:    strings.TrimSpace(xtc.Error),
			Stdout:   strings.TrimSpace(xtc.Stdout),
			Stderr:   strings.TrimSpace(xtc.Stderr),
			ExitCode: exitCode,
		}
		suite.Cases = append(suite.Cases, tc)
	}

	return suite, nil
}
