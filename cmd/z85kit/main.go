package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/corvide/z85kit/cli"
	"github.com/corvide/z85kit/config"
	"github.com/corvide/z85kit/convert"
	"github.com/corvide/z85kit/di"
	"github.com/corvide/z85kit/http"
	"github.com/corvide/z85kit/log"
)

type Config struct {
	*config.BaseConfig

	Http *http.Config `yaml:"http"`
}

func (c *Config) Default() {
	if c.BaseConfig == nil {
		c.BaseConfig = &config.BaseConfig{}
	}
	if c.Http == nil {
		c.Http = &http.Config{}
	}
	if c.Http.Address == "" {
		c.Http.Address = "127.0.0.1:8085"
	}
}

func (c *Config) Validate() error {
	return nil
}

func (c *Config) LogConfig() *log.Config   { return c.Log }
func (c *Config) HttpConfig() *http.Config { return c.Http }

var cfg = &Config{}

//

func readInput(ctx *cli.Context) ([]byte, error) {
	if ctx.NArg() > 0 {
		return []byte(ctx.Args().First()), nil
	}
	return ioutil.ReadAll(os.Stdin)
}

func optionsFromFlags(ctx *cli.Context) (convert.Options, error) {
	input, err := convert.ParseKind(ctx.String("input"))
	if err != nil {
		return convert.Options{}, err
	}
	output, err := convert.ParseKind(ctx.String("output"))
	if err != nil {
		return convert.Options{}, err
	}
	return convert.NewOptions(input, output), nil
}

func envelopeFlags() cli.Flags {
	return cli.Flags{
		&cli.StringFlag{
			Name:  "input",
			Usage: "input envelope kind (raw, data-url)",
			Value: "raw",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "output envelope kind (raw, data-url)",
			Value: "raw",
		},
	}
}

func convertCommand(name, usage string, fn func(string, convert.Options) (string, error)) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "[data, read from stdin when omitted]",
		Flags:     envelopeFlags(),
		Action: func(ctx *cli.Context) error {
			data, err := readInput(ctx)
			if err != nil {
				return err
			}

			opts, err := optionsFromFlags(ctx)
			if err != nil {
				return err
			}

			converted, err := fn(strings.TrimSpace(string(data)), opts)
			if err != nil {
				return err
			}

			fmt.Println(converted)
			return nil
		},
	}
}

func commands() cli.Commands {
	return cli.Commands{
		convertCommand(
			"z85-to-base64",
			"Convert a Z85 payload with padding info to base64",
			convert.Z85ToBase64WithOptions,
		),
		convertCommand(
			"base64-to-z85",
			"Convert a base64 payload to Z85 with padding info",
			convert.Base64ToZ85WithOptions,
		),
		&cli.Command{
			Name:      "encode",
			Usage:     "Encode raw bytes to Z85 with padding info",
			ArgsUsage: "[data, read from stdin when omitted]",
			Action: func(ctx *cli.Context) error {
				data, err := readInput(ctx)
				if err != nil {
					return err
				}

				fmt.Println(convert.EncodeZ85(data))
				return nil
			},
		},
		&cli.Command{
			Name:      "decode",
			Usage:     "Decode Z85 with padding info to raw bytes",
			ArgsUsage: "[data, read from stdin when omitted]",
			Action: func(ctx *cli.Context) error {
				data, err := readInput(ctx)
				if err != nil {
					return err
				}

				buf, err := convert.DecodeZ85(strings.TrimSpace(string(data)))
				if err != nil {
					return err
				}

				_, err = os.Stdout.Write(buf)
				return err
			},
		},
		&cli.Command{
			Name:      "efficiency",
			Usage:     "Compare projected base64 and Z85 encoded sizes",
			ArgsUsage: "<original size in bytes>",
			Action: func(ctx *cli.Context) error {
				size, err := strconv.Atoi(ctx.Args().First())
				if err != nil || size < 0 {
					return fmt.Errorf("expected a non-negative integer size, got %q", ctx.Args().First())
				}

				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(convert.Efficiency(size))
			},
		},
	}
}

func main() {
	cont := di.New()

	cli.New(
		cli.WithName("z85kit"),
		cli.WithUsage("Z85 and base64 payload conversion"),
		cli.WithDescription("Converts payloads between the Z85 and base64 text encodings, bare or wrapped as data URLs"),
		cli.WithConfigTools(
			cfg,
			config.YamlUnmarshaler,
			config.YamlMarshaler,
		),
		cli.WithLogTools(cfg.LogConfig),
		cli.WithHttpTools(
			cfg.HttpConfig,
			http.Mount,
			http.WithProvide(cont),
			http.WithInvoke(cont, func(h *http.Http) {
				log.Info().Str("address", h.Address).Msg("conversion api ready")
			}),
		),
		cli.WithCommands(commands()),
	).RunAndExitOnError()
}
