package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hogwarts-cloud/sizer/internal/models"
	"github.com/samber/lo"
)

const (
	// OCSUsableCapacityGB is the usable capacity of the storage cluster shipped with the secondary cluster.
	OCSUsableCapacityGB = 1525
	// SecondaryCDWDisksPerNode is the number of CDW local disks each secondary node carries.
	SecondaryCDWDisksPerNode = 1
)

var ErrUnknownFormat = errors.New("unknown format")

type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

var Formats = []Format{FormatText, FormatHTML, FormatJSON, FormatYAML, FormatXLSX}

func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(Formats, format) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return format, nil
}

type Report struct {
	Name         string
	Requirements models.Requirements
	Result       models.Result
	Sections     []Section
}

type Section struct {
	Title string
	Rows  []Row
}

type Row struct {
	Item  string
	Value string
}

// Document is the structured form of the report used by the json and yaml formats.
func (r Report) Document() models.Document {
	return models.Document{
		Name:         r.Name,
		Requirements: r.Requirements,
		Result:       r.Result,
	}
}

// Build lays out the hardware dimensioning output for one computation.
func Build(requirements models.Requirements, result models.Result, baseline models.Baseline) Report {
	master, worker, secondary := baseline.Master, baseline.Worker, baseline.Secondary

	nfsMode := "External"
	if requirements.InternalNFS {
		nfsMode = "Internal"
	}

	sections := []Section{
		{
			Title: master.Name,
			Rows: []Row{
				intRow("Nodes", master.Count),
				intRow("CPU cores per node", master.Resources.CPU),
				intRow("RAM per node (GB)", master.Resources.Memory),
				intRow("OS disk per node (GB)", master.Resources.OSDisk),
				intRow("Longhorn disk per node (GB)", master.Resources.LonghornDisk),
			},
		},
		{
			Title: worker.Name,
			Rows: []Row{
				intRow("Nodes", worker.Count),
				intRow("CPU cores per node", worker.Resources.CPU),
				intRow("RAM per node (GB)", worker.Resources.Memory),
				intRow("OS disk per node (GB)", worker.Resources.OSDisk),
				intRow("Longhorn disk per node (GB)", worker.Resources.LonghornDisk),
				intRow("CDW local disk per node (GB)", worker.Resources.LocalDisk),
			},
		},
		{
			Title: "NFS",
			Rows: []Row{
				{Item: "Mode", Value: nfsMode},
				intRow(fmt.Sprintf("%s NFS minimum size (GB)", nfsMode), requirements.CMLNFS),
			},
		},
		{
			Title: secondary.Name,
			Rows: []Row{
				intRow("Nodes", secondary.Count),
				intRow("CPU cores per node", secondary.Resources.CPU),
				intRow("RAM per node (GB)", secondary.Resources.Memory),
				intRow(fmt.Sprintf("CDW disks per node (%d GB)", worker.Resources.LocalDisk), SecondaryCDWDisksPerNode),
			},
		},
		{
			Title: "OCS/ODF",
			Rows: []Row{
				intRow("Usable capacity (GB)", OCSUsableCapacityGB),
			},
		},
		{
			Title: "CCU",
			Rows: []Row{
				intRow("ECS CPU cores", result.CCUCPU),
				intRow("ECS RAM (GB)", result.CCURAM),
				intRow("Openshift CPU cores", secondary.TotalCPU()),
				intRow("Openshift RAM (GB)", secondary.TotalMemory()),
			},
		},
		{
			Title: "Totals",
			Rows: []Row{
				intRow("Nodes", result.Nodes),
				intRow("CPU cores", result.CPUCores),
				intRow("RAM (GB)", result.RAMGB),
				intRow("Storage (GB)", result.StorageGB),
				intRow("NFS (GB)", result.NFSGB),
				intRow("CDW local disk (GB)", result.CDWLocalDiskGB),
			},
		},
	}

	return Report{
		Requirements: requirements,
		Result:       result,
		Sections:     sections,
	}
}

func intRow(item string, value int) Row {
	return Row{Item: item, Value: strconv.Itoa(value)}
}
