package config

import (
	"encoding/xml"
	"fmt"
	"os"
)

var Port string
var DataDir string
var Database string
var DefaultCRS string
var MainConfig Config

type Config struct {
	XMLName    xml.Name `xml:"config"`
	Port       string   `xml:"port"`
	DataDir    string   `xml:"datadir"`
	Database   string   `xml:"database"`
	DefaultCRS string   `xml:"defaultcrs"`
}

// Settings come from config.xml next to the binary. A missing file is
// fine, the defaults below apply; a malformed one is reported and the
// defaults apply too.
func init() {
	Port = "8090"
	DataDir = "data"
	Database = "convert.db"
	DefaultCRS = "UTM33"

	xmlFile, err := os.Open("config.xml")
	if err != nil {
		return
	}
	defer xmlFile.Close()

	if err := xml.NewDecoder(xmlFile).Decode(&MainConfig); err != nil {
		fmt.Println("Error decoding config.xml:", err)
		return
	}
	if MainConfig.Port != "" {
		Port = MainConfig.Port
	}
	if MainConfig.DataDir != "" {
		DataDir = MainConfig.DataDir
	}
	if MainConfig.Database != "" {
		Database = MainConfig.Database
	}
	if MainConfig.DefaultCRS != "" {
		DefaultCRS = MainConfig.DefaultCRS
	}
}
