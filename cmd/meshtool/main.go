// meshtool is a CLI utility for generating, transforming, and plane-clipping
// attribute-rich triangle meshes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/voxfield/meshattr/internal/config"
	"github.com/voxfield/meshattr/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "meshtool: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "meshtool: init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "make":
		cmdMake(cfg, rest)
	case "clip":
		cmdClip(cfg, rest)
	case "info":
		cmdInfo(cfg, rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - attribute-aware mesh utility

Usage:
  meshtool [global flags] <command> [options]

Commands:
  make <cube|quad>   Generate a primitive and write it as OBJ
  clip <cube|quad>   Generate a primitive, slice it against a plane
  info <cube|quad>   Report vertex, triangle, and attribute statistics

Common options:
  -attrs list        Attribute channels (e.g. normal,uv0,color; default all)
  -translate x,y,z   Translate the mesh
  -rotate x,y,z,deg  Rotate around an axis by degrees
  -scale s           Uniform scale
  -out file.obj      Output path (default stdout)

Clip options:
  -plane nx,ny,nz,d  Clip plane (normal and offset; default 1,0,0,0)
  -keep front|back   Which side to keep (default front)

Global flags:
  -config path       Config file (default ./meshtool.yaml)
  -debug             Enable debug logging
  -log-file path     Write logs to a rotating file
  -epsilon e         Plane-distance tolerance

Examples:
  meshtool make cube -attrs normal,uv0 -out cube.obj
  meshtool clip cube -plane 0,1,0,0 -keep back -out half.obj
  meshtool -debug info quad -rotate 0,0,1,45`)
}
