package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KartForge/ShpDxfBridge/Transformer"
	"github.com/KartForge/ShpDxfBridge/config"
	"github.com/KartForge/ShpDxfBridge/crs"
	"github.com/KartForge/ShpDxfBridge/models"
	"github.com/KartForge/ShpDxfBridge/routers"
)

func main() {
	modePtr := flag.String("mode", "", "dxf2shp, shp2dxf, prj or serve")
	inPtr := flag.String("in", "", "Input directory")
	outPtr := flag.String("out", "", "Output directory")
	crsPtr := flag.String("crs", "", "CRS selection token or 1-based catalog index")
	portPtr := flag.String("port", "", "Listen port for serve mode (overrides config)")
	flag.Parse()

	switch *modePtr {
	case "dxf2shp":
		requireDirs(*inPtr, *outPtr)
		job := Transformer.Batch{SourceDir: *inPtr, DestDir: *outPtr, CRS: *crsPtr}
		counts, err := job.RunDxfToShp()
		if err != nil {
			failBatch(err)
		}
		fmt.Println("Total:", counts.String())

	case "shp2dxf":
		requireDirs(*inPtr, *outPtr)
		job := Transformer.Batch{SourceDir: *inPtr, DestDir: *outPtr}
		counts, err := job.RunShpToDxf()
		if err != nil {
			failBatch(err)
		}
		fmt.Println("Total:", counts.String())

	case "prj":
		if *inPtr == "" {
			flag.Usage()
			os.Exit(2)
		}
		token := *crsPtr
		if token == "" {
			token = promptCrs(*inPtr)
		}
		entry := resolveOrExit(token)
		n, err := crs.Apply(*inPtr, entry)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Stamped %d shapefile(s) with %s (EPSG:%d)\n", n, entry.Key, entry.EPSG)

	case "serve":
		if err := models.InitDatabase(); err != nil {
			log.Printf("history disabled: %v", err)
		}
		r := gin.Default()
		routers.ConvertRouters(r)
		port := *portPtr
		if port == "" {
			port = config.Port
		}
		if err := r.Run(":" + port); err != nil {
			log.Fatal(err)
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func requireDirs(in, out string) {
	if in == "" || out == "" {
		flag.Usage()
		os.Exit(2)
	}
	if _, err := os.Stat(in); err != nil {
		log.Fatalf("input directory %q does not exist", in)
	}
}

func resolveOrExit(token string) crs.Entry {
	entry, err := crs.Resolve(token)
	if err != nil {
		fmt.Println(err)
		fmt.Println("No changes made.")
		os.Exit(1)
	}
	return entry
}

// failBatch reports a batch failure. Selection errors get the plain
// resolver message; the batch refuses them before touching any file.
func failBatch(err error) {
	if errors.Is(err, crs.ErrInvalidSelection) || errors.Is(err, crs.ErrZoneOutOfRange) {
		fmt.Println(err)
		fmt.Println("No changes made.")
		os.Exit(1)
	}
	log.Fatal(err)
}

// promptCrs shows the catalog menu and reads one selection line, the
// way surveyors pick a zone when none was given on the command line.
func promptCrs(dir string) string {
	abs, _ := filepath.Abs(dir)
	fmt.Println("\nSelect Coordinate Reference System for all .shp in:", abs)
	fmt.Println("\nCommon CRSs for Norway (EUREF89 UTM default, WGS UTM only when explicitly requested, and NTM zones):")
	fmt.Println()
	for i, e := range crs.Catalog() {
		fmt.Printf("%2d. %-40s   key: %s\n", i+1, fmt.Sprintf("%s (EPSG:%d)", e.Label, e.EPSG), e.Key)
	}
	fmt.Println("\nEnter the index (e.g., 3) or a key like 'UTM33' (EUREF), 'WGS/UTM32' or 'WGS84/UTM32' (WGS), 'EUREF89/UTM35', or 'NTM/10'")
	fmt.Printf("> [%s] ", config.DefaultCRS)

	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if s := strings.TrimSpace(line); s != "" {
		return s
	}
	return config.DefaultCRS
}
