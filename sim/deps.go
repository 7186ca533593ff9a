package sim

import (
	"path"

	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/log"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/util"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/workspace"
)

// Fmcomms2Deps lists the library IP modules the FMCOMMS2 testbench
// elaborates. Each must have been built by the HDL library makefiles
// before a simulation project can be created.
var Fmcomms2Deps = []string{
	"axi_ad9361",
	"axi_clkgen",
	"axi_dmac",
	"axi_sysid",
	"sysid_rom",
	"util_cpack2",
	"util_upack2",
	"util_rfifo",
	"util_wfifo",
	"util_tdd_sync",
}

// VipModules lists the verification IP modules of the simulation
// library. They are built on demand from their vendor-provided scripts.
var VipModules = []string{
	"adi_spi_vip",
	"clk_vip",
	"ddr_axi_vip",
	"rst_vip",
}

// markerFileName is the build artifact whose presence marks an IP
// module as built.
const markerFileName = "component.xml"

// vipDirName is the simulation IP subtree of the library.
const vipDirName = "vip"

// marker returns the marker file of a library IP module.
func marker(root, module string) string {
	return path.Join(root, workspace.LibraryDirName, module, markerFileName)
}

// vipMarker returns the marker file of a simulation IP module.
func vipMarker(root, module string) string {
	return path.Join(root, workspace.LibraryDirName, vipDirName, module, markerFileName)
}

// vipScript returns the vendor-provided build script of a simulation IP module.
func vipScript(root, module string) string {
	return path.Join(root, workspace.LibraryDirName, vipDirName, module, module+"_ip.tcl")
}

// MissingDeps returns the modules of the given list whose marker file
// is absent from the library tree.
func MissingDeps(root string, modules []string) []string {
	return util.FilteredSlice(modules, func(module string) bool {
		return !util.FileExists(marker(root, module))
	})
}

// MissingVipModules returns the simulation IP modules that have not
// been built yet.
func MissingVipModules(root string) []string {
	return util.FilteredSlice(VipModules, func(module string) bool {
		return !util.FileExists(vipMarker(root, module))
	})
}

// CheckDeps verifies that all library IP dependencies of the bench have
// been built, logging every missing module.
func (b Bench) CheckDeps() bool {
	missing := MissingDeps(b.Root, Fmcomms2Deps)
	for _, module := range missing {
		log.Error("Library module '%s' has not been built ('%s' is missing).\n",
			module, marker(b.Root, module))
	}
	if len(missing) > 0 {
		log.Error("%d library dependencies are missing. Build the HDL library first.\n", len(missing))
		return false
	}
	log.Debug("All %d library dependencies are present.\n", len(Fmcomms2Deps))
	return true
}
