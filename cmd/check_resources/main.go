// check_resources 检查资源配置中的每个图片是否存在
//
// 缺失的纹理在运行时会回退到占位颜色，这里提前报告。
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/decker502/solarsystem/pkg/embedded"
	"github.com/decker502/solarsystem/pkg/game"
)

var (
	resourceConfig = flag.String("resources", "assets/config/resources.yaml", "资源配置文件")
	strict         = flag.Bool("strict", false, "有缺失文件时以非零状态退出")
)

func main() {
	flag.Parse()

	rm := game.NewResourceManager(1)
	if err := rm.LoadResourceConfig(*resourceConfig); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ids := rm.ImageIDs()
	sort.Strings(ids)

	missing := 0
	for _, id := range ids {
		path := rm.ResolvePath(id)
		status := "ok"
		if !embedded.Exists(path) {
			if _, err := os.Stat(path); err != nil {
				status = "MISSING"
				missing++
			}
		}
		fmt.Printf("%-8s %-16s %s\n", status, id, path)
	}
	fmt.Printf("\n%d resources, %d missing\n", len(ids), missing)

	if *strict && missing > 0 {
		os.Exit(1)
	}
}
