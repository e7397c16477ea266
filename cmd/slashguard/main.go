// Command slashguard is an ambient inspection and initialization tool for
// the slashing-protection stores in validator/db/kv. It has no effect on
// slashing semantics; it exists only to give the persisted file format an
// external, human-facing surface.
package main

import (
	"fmt"
	"os"

	"github.com/attestguard/slashguard/validator/db/kv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var log = logrus.WithField("prefix", "slashguard")

var (
	kindFlag = &cli.StringFlag{
		Name:     "kind",
		Usage:    "store kind: block or attestation",
		Required: true,
	}
	pathFlag = &cli.StringFlag{
		Name:     "path",
		Usage:    "path to the store file",
		Required: true,
	}
)

func main() {
	logrus.SetFormatter(&prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	app := &cli.App{
		Name:  "slashguard",
		Usage: "inspect and initialize slashing-protection stores",
		Commands: []*cli.Command{
			initCommand,
			inspectCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("slashguard failed")
	}
}

var initCommand = &cli.Command{
	Name:  "init",
	Usage: "create a store file if it does not already exist",
	Flags: []cli.Flag{kindFlag, pathFlag},
	Action: func(c *cli.Context) error {
		kind, path := c.String("kind"), c.String("path")
		switch kind {
		case "block":
			l, err := kv.InitializeBlockLog(path)
			if err != nil {
				return err
			}
			defer func() { _ = l.Close() }()
		case "attestation":
			l, err := kv.InitializeAttestationLog(path)
			if err != nil {
				return err
			}
			defer func() { _ = l.Close() }()
		default:
			return fmt.Errorf("slashguard: unknown kind %q, want block or attestation", kind)
		}
		log.WithFields(logrus.Fields{"kind": kind, "path": path}).Info("Store initialized")
		return nil
	},
}

var inspectCommand = &cli.Command{
	Name:  "inspect",
	Usage: "print the ordered history of a store",
	Flags: []cli.Flag{kindFlag, pathFlag},
	Action: func(c *cli.Context) error {
		kind, path := c.String("kind"), c.String("path")
		switch kind {
		case "block":
			return inspectBlockLog(path)
		case "attestation":
			return inspectAttestationLog(path)
		default:
			return fmt.Errorf("slashguard: unknown kind %q, want block or attestation", kind)
		}
	},
}

func inspectBlockLog(path string) error {
	l, err := kv.OpenBlockLog(path)
	if err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	records, err := l.LoadAll()
	if err != nil {
		return err
	}
	log.WithField("count", len(records)).Info("Loaded block history")
	for _, rec := range records {
		log.WithFields(logrus.Fields{
			"slot": rec.Slot,
			"root": fmt.Sprintf("%#x", rec.Root),
		}).Info("block")
	}
	return nil
}

func inspectAttestationLog(path string) error {
	l, err := kv.OpenAttestationLog(path)
	if err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	records, err := l.LoadAll()
	if err != nil {
		return err
	}
	log.WithField("count", len(records)).Info("Loaded attestation history")
	for _, rec := range records {
		log.WithFields(logrus.Fields{
			"sourceEpoch": rec.SourceEpoch,
			"targetEpoch": rec.TargetEpoch,
			"root":        fmt.Sprintf("%#x", rec.Root),
		}).Info("attestation")
	}
	return nil
}
