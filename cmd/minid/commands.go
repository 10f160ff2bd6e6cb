package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"github.com/lychee-technology/minid"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DecodeReport is the JSON output of the decode command
type DecodeReport struct {
	ID     string `json:"id"`
	UUID   string `json:"uuid"`
	Prefix string `json:"prefix,omitempty"`
	Hi     uint64 `json:"hi"`
	Lo     uint64 `json:"lo"`
	Zero   bool   `json:"zero"`
}

// newCommand generates --count identifiers in parallel, printed in order.
func newCommand(c *cli.Context) error {
	count := c.Int("count")
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	generator, err := minid.NewGenerator(c.String("prefix"), nil)
	if err != nil {
		return err
	}

	ids := make([]minid.ID, count)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range ids {
		g.Go(func() error {
			id, err := generator.Next()
			if err != nil {
				return err
			}
			ids[i] = id
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	zap.S().Debugw("generated ids", "count", count, "prefix", generator.Prefix())
	for _, id := range ids {
		fmt.Fprintln(c.App.Writer, id)
	}
	return nil
}

func encodeCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("encode expects exactly one uuid argument")
	}

	u, err := uuid.Parse(c.Args().First())
	if err != nil {
		return fmt.Errorf("parse uuid: %w", err)
	}

	id := minid.FromUUID(u)
	if prefix := c.String("prefix"); prefix != "" {
		if id, err = id.WithPrefix(prefix); err != nil {
			return err
		}
	}

	fmt.Fprintln(c.App.Writer, id)
	return nil
}

func decodeCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("decode expects exactly one id argument")
	}

	text := c.Args().First()
	var (
		id  minid.ID
		err error
	)
	if prefix := c.String("prefix"); prefix != "" {
		id, err = minid.DecodeWithPrefix(text, prefix)
	} else {
		id, err = minid.Decode(text)
	}
	if err != nil {
		return err
	}

	if !c.Bool("json") {
		fmt.Fprintln(c.App.Writer, id.UUID())
		return nil
	}

	hi, lo := id.Uint64s()
	report := DecodeReport{
		ID:     id.String(),
		UUID:   id.UUID().String(),
		Prefix: id.Prefix(),
		Hi:     hi,
		Lo:     lo,
		Zero:   id.IsZero(),
	}
	encoder := json.NewEncoder(c.App.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func schemaCommand(c *cli.Context) error {
	schema, err := minid.JSONSchema(c.String("prefix"))
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(c.App.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(schema)
}

func validateCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("validate expects exactly one json argument")
	}

	if err := minid.ValidateJSON(c.Args().First(), c.String("prefix")); err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, "valid")
	return nil
}
