package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/austoonz/Convert/convert"
	"github.com/austoonz/Convert/internal/config"
	"github.com/austoonz/Convert/internal/logging"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

func encodingFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "encoding",
		Aliases: []string{"e"},
		Value:   "UTF8",
		Usage:   "text encoding: UTF8, ASCII, Unicode, BigEndianUnicode, UTF32 or Latin1.",
	}
}

func lenientFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "lenient",
		Usage: "fall back to ISO-8859-1 when decoded bytes are invalid in the chosen encoding.",
	}
}

func millisecondsFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "milliseconds",
		Aliases: []string{"ms"},
		Usage:   "timestamps are in milliseconds rather than seconds.",
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "convert",
		Usage: "Convert text between encodings, digests, compressed and percent-encoded forms",
		Description: `
Each command reads its input from the first argument, or from stdin when no argument is given:

  convert base64 encode --encoding Unicode 'Hello'
  echo -n 'Hello' | convert hash --algorithm SHA256`[1:],
		Before: func(c *cli.Context) error {
			conf, err := config.Load()
			if err != nil {
				return err
			}
			logging.SetLogger(logging.New(c.App.ErrWriter, conf))
			return nil
		},
		Commands: []*cli.Command{
			base64Command(),
			hashCommand(),
			gzipCommand(),
			urlCommand(),
			unixTimeCommand(),
			temperatureCommand(),
		},
	}
}

func input(c *cli.Context) (string, error) {
	if c.Args().Present() {
		return c.Args().First(), nil
	}

	data, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return "", errors.Wrap(err, "failed to read stdin")
	}
	return string(data), nil
}

func output(c *cli.Context, value string) error {
	_, err := fmt.Fprintln(c.App.Writer, value)
	return err
}

func transform(op func(c *cli.Context, in string) (string, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		in, err := input(c)
		if err != nil {
			return err
		}

		out, err := op(c, in)
		if err != nil {
			return err
		}
		return output(c, out)
	}
}

func base64Command() *cli.Command {
	return &cli.Command{
		Name:  "base64",
		Usage: "Encode text to base64 or decode base64 to text",
		Subcommands: []*cli.Command{
			{
				Name:  "encode",
				Usage: "encode text in the chosen encoding, then base64 the bytes.",
				Flags: []cli.Flag{encodingFlag()},
				Action: transform(func(c *cli.Context, in string) (string, error) {
					return convert.StringToBase64(in, c.String("encoding"))
				}),
			},
			{
				Name:  "decode",
				Usage: "decode base64, then read the bytes as text in the chosen encoding.",
				Flags: []cli.Flag{encodingFlag(), lenientFlag()},
				Action: transform(func(c *cli.Context, in string) (string, error) {
					in = strings.TrimSpace(in)
					if c.Bool("lenient") {
						return convert.Base64ToStringLenient(in, c.String("encoding"))
					}
					return convert.Base64ToString(in, c.String("encoding"))
				}),
			},
		},
	}
}

func hashCommand() *cli.Command {
	return &cli.Command{
		Name:  "hash",
		Usage: "Digest text as uppercase hex",
		Flags: []cli.Flag{
			encodingFlag(),
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   "SHA256",
				Usage:   "MD5, SHA1, SHA256, SHA384, SHA512 or XXHASH64.",
			},
			&cli.StringFlag{
				Name:  "hmac-key",
				Usage: "compute an HMAC keyed with the UTF-8 bytes of this value.",
			},
		},
		Action: transform(func(c *cli.Context, in string) (string, error) {
			if c.IsSet("hmac-key") {
				return convert.ComputeHMAC(in, []byte(c.String("hmac-key")), c.String("algorithm"), c.String("encoding"))
			}
			return convert.ComputeHash(in, c.String("algorithm"), c.String("encoding"))
		}),
	}
}

func gzipCommand() *cli.Command {
	levelFlag := func() cli.Flag {
		return &cli.IntFlag{
			Name:    "level",
			Aliases: []string{"l"},
			Value:   -1,
			Usage:   "gzip level between -2 and 9, -1 for the default.",
		}
	}

	compressor := func(c *cli.Context) *convert.Compressor {
		options := convert.DefaultCompressOptions()
		options.Level = c.Int("level")
		return convert.NewCompressor(options)
	}

	return &cli.Command{
		Name:  "gzip",
		Usage: "Compress text to base64-wrapped gzip or reverse it",
		Subcommands: []*cli.Command{
			{
				Name:  "compress",
				Usage: "encode text, gzip it and print the result as base64.",
				Flags: []cli.Flag{encodingFlag(), levelFlag()},
				Action: transform(func(c *cli.Context, in string) (string, error) {
					compressed, err := compressor(c).CompressString(in, c.String("encoding"))
					if err != nil {
						return "", err
					}
					return convert.BytesToBase64(compressed), nil
				}),
			},
			{
				Name:  "decompress",
				Usage: "decode base64, gunzip it and print the text.",
				Flags: []cli.Flag{encodingFlag(), lenientFlag(), levelFlag()},
				Action: transform(func(c *cli.Context, in string) (string, error) {
					in = strings.TrimSpace(in)
					if c.Bool("lenient") {
						return compressor(c).Base64ToDecompressedStringLenient(in, c.String("encoding"))
					}
					return compressor(c).Base64ToDecompressedString(in, c.String("encoding"))
				}),
			},
		},
	}
}

func urlCommand() *cli.Command {
	return &cli.Command{
		Name:  "url",
		Usage: "Percent-encode or decode text",
		Subcommands: []*cli.Command{
			{
				Name: "encode",
				Action: transform(func(c *cli.Context, in string) (string, error) {
					return convert.URLEncode(in), nil
				}),
			},
			{
				Name: "decode",
				Action: transform(func(c *cli.Context, in string) (string, error) {
					return convert.URLDecode(in)
				}),
			},
		},
	}
}

func unixTimeCommand() *cli.Command {
	return &cli.Command{
		Name:  "unixtime",
		Usage: "Convert between UTC calendar times and Unix timestamps",
		Subcommands: []*cli.Command{
			{
				Name:      "from",
				Usage:     "print the UTC time of a Unix timestamp.",
				ArgsUsage: "<timestamp>",
				Flags:     []cli.Flag{millisecondsFlag()},
				Action: transform(func(c *cli.Context, in string) (string, error) {
					timestamp, err := strconv.ParseInt(strings.TrimSpace(in), 10, 64)
					if err != nil {
						return "", errors.Wrapf(err, "invalid timestamp %q", in)
					}
					d := convert.FromUnixTime(timestamp, c.Bool("milliseconds"))
					return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second), nil
				}),
			},
			{
				Name:      "to",
				Usage:     "print the Unix timestamp of a UTC time written as YYYY-MM-DDTHH:MM:SSZ.",
				ArgsUsage: "<time>",
				Flags:     []cli.Flag{millisecondsFlag()},
				Action: transform(func(c *cli.Context, in string) (string, error) {
					var d convert.DateTime
					_, err := fmt.Sscanf(strings.TrimSpace(in), "%4d-%2d-%2dT%2d:%2d:%2dZ",
						&d.Year, &d.Month, &d.Day, &d.Hour, &d.Minute, &d.Second)
					if err != nil {
						return "", errors.Wrapf(err, "invalid time %q", in)
					}
					if err := d.Validate(); err != nil {
						return "", err
					}
					return strconv.FormatInt(convert.ToUnixTime(d, c.Bool("milliseconds")), 10), nil
				}),
			},
		},
	}
}

func temperatureCommand() *cli.Command {
	convertWith := func(f func(float64) float64) cli.ActionFunc {
		return transform(func(c *cli.Context, in string) (string, error) {
			value, err := strconv.ParseFloat(strings.TrimSpace(in), 64)
			if err != nil {
				return "", errors.Wrapf(err, "invalid temperature %q", in)
			}
			return strconv.FormatFloat(f(value), 'f', -1, 64), nil
		})
	}

	return &cli.Command{
		Name:  "temperature",
		Usage: "Convert between Fahrenheit and Celsius",
		Subcommands: []*cli.Command{
			{Name: "to-celsius", Action: convertWith(convert.FahrenheitToCelsius)},
			{Name: "to-fahrenheit", Action: convertWith(convert.CelsiusToFahrenheit)},
		},
	}
}
