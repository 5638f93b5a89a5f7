package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/suyu0925/coordx/pkg/common"
	"github.com/suyu0925/coordx/pkg/coord"
)

const usage = `用法:
  coordx convert -from wgs84 -to gcj02 [-digits 6] "<坐标文本>"
  coordx parse "<坐标文本>"
  coordx format [-digits 6] "<坐标文本>"

以 "-" 开头的负坐标（如 -33.86,151.2）直接作为坐标文本，也可以放在 -- 之后。
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "convert":
		err = runConvert(args[1:], stdout, stderr)
	case "parse":
		err = runParse(args[1:], stdout, stderr)
	case "format":
		err = runFormat(args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "未知命令: %s\n%s", args[0], usage)
		return 2
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		common.Debug("命令执行失败", common.String("command", args[0]), common.ErrorField(err))
		fmt.Fprintf(stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}

var negativeNumber = regexp.MustCompile(`^-\.?\d`)

// parseFlags 在第一个负坐标前插入 "--"，避免被当作未定义的参数
func parseFlags(fs *flag.FlagSet, args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || !strings.HasPrefix(arg, "-") {
			break
		}
		if negativeNumber.MatchString(arg) {
			args = append(append(append([]string{}, args[:i]...), "--"), args[i:]...)
			break
		}
		// 非布尔参数的值在下一个位置
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := fs.Lookup(name); f != nil {
			if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); !ok || !bf.IsBoolFlag() {
				i++
			}
		}
	}
	return fs.Parse(args)
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// text 取剩余参数拼成坐标文本
func text(fs *flag.FlagSet) (string, error) {
	if fs.NArg() == 0 {
		return "", common.NewValidationError("缺少坐标文本", nil)
	}
	return strings.Join(fs.Args(), " "), nil
}

func runConvert(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("convert", stderr)
	from := fs.String("from", "wgs84", "源坐标系 (wgs84, gcj02, bd09)")
	to := fs.String("to", "gcj02", "目标坐标系 (wgs84, gcj02, bd09)")
	digits := fs.Int("digits", coord.DefaultFractionDigits, "输出的小数位数，0 表示不舍入")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	src, err := coord.ParseSystem(*from)
	if err != nil {
		return err
	}
	dst, err := coord.ParseSystem(*to)
	if err != nil {
		return err
	}
	in, err := text(fs)
	if err != nil {
		return err
	}
	c, err := coord.Parse(in)
	if err != nil {
		return err
	}

	typed, err := coord.NewTyped(src, c)
	if err != nil {
		return err
	}
	out, err := coord.Convert(typed, dst)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, coord.Format(out.Point(), coord.WithFractionDigits(*digits)))
	return nil
}

func runParse(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("parse", stderr)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	in, err := text(fs)
	if err != nil {
		return err
	}
	c, n, err := coord.ParseNotation(in)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s\t%s\n", n, coord.Format(c, coord.WithFractionDigits(0)))
	return nil
}

func runFormat(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("format", stderr)
	digits := fs.Int("digits", coord.DefaultFractionDigits, "输出的小数位数，0 表示不舍入")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	in, err := text(fs)
	if err != nil {
		return err
	}
	c, err := coord.Parse(in)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, coord.Format(c, coord.WithFractionDigits(*digits)))
	return nil
}
