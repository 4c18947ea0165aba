/*
Copyright © 2024 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/blacktop/go-unigreet"
	"github.com/blacktop/go-unigreet/pkg/asgi"
	"github.com/spf13/cobra"
)

// options holds the parsed command line
type options struct {
	size           int
	threshold      int
	upperThreshold int
	charset        string
	invert         bool
	timing         bool
	hAlign         string
	vAlign         string
	padding        int
	noColor        bool
	limit          int
	crop           bool
	fill           bool
	debug          bool
	save           string
	load           string
	loadRandom     string

	// resolved by validate
	cs      unigreet.Charset
	ha      unigreet.HAlign
	va      unigreet.VAlign
	doSave  bool
	file    string
	verbose bool
}

var opts options

// saveHere is the --save value used when the flag is given without a name
const saveHere = "."

func init() {
	log.SetHandler(clihander.Default)

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "V", false, "Enable verbose logging")

	f := rootCmd.Flags()
	f.IntVarP(&opts.size, "size", "s", unigreet.DefaultSize, "Image height in lines, e.g. 30 = output is 30 lines in height")
	f.IntVarP(&opts.threshold, "threshold", "t", 0, "Ignore values that are darker than the set value")
	f.IntVar(&opts.upperThreshold, "upperthreshold", 256, "Ignore values that are lighter than the set value (BRAILLE only)")
	f.StringVarP(&opts.charset, "charset", "c", unigreet.Block.String(), "Charset the image is printed as (BLOCK, BRAILLE)")
	f.BoolVarP(&opts.invert, "invert", "i", false, "Invert the grayscale representation, useful to cut out white backgrounds")
	f.BoolVar(&opts.timing, "time", false, "Measure the time it takes to print the image")
	f.StringVar(&opts.hAlign, "horizontal-align", unigreet.AlignCenter.String(), "Horizontal alignment (LEFT, CENTER, RIGHT)")
	f.StringVar(&opts.vAlign, "vertical-align", unigreet.AlignMiddle.String(), "Vertical alignment (TOP, CENTER, BOTTOM), only has effect together with --padding")
	f.IntVarP(&opts.padding, "padding", "p", 0, "Total output height in lines; ignored when lower than the print height")
	f.BoolVar(&opts.noColor, "nocolor", !unigreet.ColorDefault(), "Print the image without colors")
	f.IntVarP(&opts.limit, "limit", "l", 0, "Limit the picture to a set amount of colors [0, 256], 0 = unlimited")
	f.BoolVar(&opts.crop, "crop", false, "Trim the uniform border of the image")
	f.BoolVar(&opts.fill, "fill", false, "Fill the current terminal window, overrides --size")
	f.BoolVar(&opts.debug, "debug", false, "Save the intermediate images to the working directory")
	f.StringVar(&opts.save, "save", "", "Save the output as an "+asgi.Ext+" file, defaults to the image name")
	f.Lookup("save").NoOptDefVal = saveHere
	f.StringVar(&opts.load, "load", "", "Load an "+asgi.Ext+" file instead of an image")
	f.StringVar(&opts.loadRandom, "load-random", "", "Load a random "+asgi.Ext+" file from the provided directory")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "unigreet [file]",
	Short: "Convert images to Unicode art with colors and more",
	Args:  cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if opts.verbose {
			log.SetLevel(log.DebugLevel)
		}
		opts.doSave = cmd.Flags().Changed("save")
		if len(args) > 0 {
			opts.file = args[0]
		}
		return opts.validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		if err := run(cmd.OutOrStdout(), &opts); err != nil {
			return err
		}

		if opts.timing {
			elapsed := time.Since(start)
			fmt.Fprintf(cmd.OutOrStdout(), "%.2fs, %dms\n", elapsed.Seconds(), elapsed.Milliseconds())
		}
		return nil
	},
	SilenceUsage: true,
}

// validate rejects bad option combinations before anything is printed
func (o *options) validate() error {
	var err error
	if o.cs, err = unigreet.ParseCharset(o.charset); err != nil {
		return err
	}
	if o.ha, err = unigreet.ParseHAlign(o.hAlign); err != nil {
		return err
	}
	if o.va, err = unigreet.ParseVAlign(o.vAlign); err != nil {
		return err
	}
	if err := (unigreet.Threshold{Lower: o.threshold, Upper: o.upperThreshold}).Validate(); err != nil {
		return err
	}
	if o.limit < 0 || o.limit > unigreet.MaxColors {
		return fmt.Errorf("invalid limit %d: value needs to be in range [0, %d]", o.limit, unigreet.MaxColors)
	}
	if o.size < 0 || o.padding < 0 {
		return errors.New("size and padding cannot be negative")
	}

	if o.load != "" && !asgi.IsFrameFile(o.load) {
		return fmt.Errorf("invalid file %q: file must have %s extension", o.load, asgi.Ext)
	}
	if o.loadRandom != "" {
		if fi, err := os.Stat(o.loadRandom); err != nil || !fi.IsDir() {
			return fmt.Errorf("invalid path %q: not a directory", o.loadRandom)
		}
	}

	switch {
	case (o.load != "" || o.loadRandom != "") && o.file != "":
		return errors.New("the '--load' and '--load-random' flags cannot be used with a 'file' argument")
	case o.load != "" && o.loadRandom != "":
		return errors.New("the '--load' and '--load-random' flags cannot be used together")
	case o.load == "" && o.loadRandom == "" && o.file == "":
		return errors.New("the following argument is required: 'file' or '--load' or '--load-random'")
	case o.doSave && o.file == "":
		return errors.New("the '--save' flag requires a 'file' argument")
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
