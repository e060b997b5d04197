package calculator

import (
	"fmt"

	"github.com/hogwarts-cloud/sizer/internal/models"
	"github.com/hogwarts-cloud/sizer/internal/validate"
)

type Validator interface {
	Run(requirements models.Requirements) error
}

type Calculator struct {
	baseline  models.Baseline
	validator Validator
}

func (c *Calculator) Baseline() models.Baseline {
	return c.baseline
}

func (c *Calculator) Compute(r models.Requirements) (models.Result, error) {
	if err := c.validator.Run(r); err != nil {
		return models.Result{}, fmt.Errorf("failed to validate requirements: %w", err)
	}

	acc := &accumulator{}

	acc.nodes(r.Environment)
	acc.storage += r.EmbeddedDB

	// CDW
	acc.nodes(r.DataCatalog)
	acc.nodes(r.HiveVW)
	acc.flavor(r.HiveLiteExec, models.HiveLiteExecutor)
	acc.flavor(r.HiveProdExec, models.HiveProdExecutor)
	acc.nodes(r.ImpalaVW)
	acc.units(r.ImpalaLiteExec, r.ImpalaLiteExecCPU, r.ImpalaLiteExecMem)
	acc.units(r.ImpalaLiteCoordQty, r.ImpalaLiteCoordCPU, r.ImpalaLiteCoordMem)
	acc.units(r.ImpalaProdExec, r.ImpalaProdExecCPU, r.ImpalaProdExecMem)
	acc.units(r.ImpalaProdCoordQty, r.ImpalaProdCoordCPU, r.ImpalaProdCoordMem)
	acc.flavor(r.DataVizSmall, models.DataVizSmall)
	acc.flavor(r.DataVizMedium, models.DataVizMedium)
	acc.flavor(r.DataVizLarge, models.DataVizLarge)

	// CDE
	acc.nodes(r.CDEService)
	acc.nodes(r.CDEVC)
	acc.units(r.JobQuantity, r.JobDriverCPU, r.JobDriverMem)
	acc.units(r.JobExec, r.JobExecCPU, r.JobExecMem)

	// CML
	acc.nodes(r.CMLWorkspace)
	acc.flavor(r.CMLXSmallSession, models.SessionXSmall)
	acc.flavor(r.CMLSmallSession, models.SessionSmall)
	acc.flavor(r.CMLMediumSession, models.SessionMedium)
	if r.BackupWorkspace > 0 {
		acc.nodes(r.BackupWorkspace)
	}
	if r.ModelRegistry {
		acc.nodes(1)
	}

	// DRS
	if r.DRSBackup > 0 {
		acc.nodes(r.DRSBackup)
	}

	for _, group := range c.baseline.Groups() {
		acc.group(group)
	}

	result := models.Result{
		Nodes:          acc.nodeCount,
		CPUCores:       acc.cpu,
		RAMGB:          acc.ram,
		StorageGB:      acc.storage,
		CDWLocalDiskGB: acc.localDisk,
		Warnings:       make([]string, 0),
	}

	if r.InternalNFS {
		result.NFSGB = r.CMLNFS
	}

	// The secondary cluster is already part of CPUCores/RAMGB and is added again here.
	primaryCPU, primaryRAM := c.baseline.Primary()
	result.CCUCPU = result.CPUCores + primaryCPU + c.baseline.Secondary.TotalCPU()
	result.CCURAM = result.RAMGB + primaryRAM + c.baseline.Secondary.TotalMemory()

	return result, nil
}

type accumulator struct {
	nodeCount int
	cpu       int
	ram       int
	storage   int
	localDisk int
}

func (a *accumulator) nodes(count int) {
	a.nodeCount += count
}

func (a *accumulator) units(count, cpu, ram int) {
	a.cpu += count * cpu
	a.ram += count * ram
}

func (a *accumulator) flavor(count int, flavor models.Flavor) {
	a.units(count, flavor.Resources.CPU, flavor.Resources.Memory)
}

func (a *accumulator) group(group models.NodeGroup) {
	a.nodeCount += group.Count
	a.cpu += group.TotalCPU()
	a.ram += group.TotalMemory()
	a.storage += group.TotalStorage()
	a.localDisk += group.TotalLocalDisk()
}

func New(baseline models.Baseline) *Calculator {
	return &Calculator{
		baseline:  baseline,
		validator: validate.New(),
	}
}
