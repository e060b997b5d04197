package models

type Result struct {
	Nodes          int      `json:"nodes" yaml:"nodes"`
	CPUCores       int      `json:"cpu_cores" yaml:"cpu_cores"`
	RAMGB          int      `json:"ram_gb" yaml:"ram_gb"`
	StorageGB      int      `json:"storage_gb" yaml:"storage_gb"`
	NFSGB          int      `json:"nfs_gb" yaml:"nfs_gb"`
	CDWLocalDiskGB int      `json:"cdw_local_disk_gb" yaml:"cdw_local_disk_gb"`
	CCUCPU         int      `json:"ccu_cpu" yaml:"ccu_cpu"`
	CCURAM         int      `json:"ccu_ram" yaml:"ccu_ram"`
	Warnings       []string `json:"warnings" yaml:"warnings"`
}

type Scenario struct {
	Name         string       `json:"name" yaml:"name"`
	Location     string       `json:"-" yaml:"-"`
	Requirements Requirements `json:"requirements" yaml:"requirements"`
}

type Outcome struct {
	Scenario Scenario `json:"scenario" yaml:"scenario"`
	Result   Result   `json:"result" yaml:"result"`
}

// Document is the structured record written for programmatic consumers.
type Document struct {
	Name         string       `json:"name,omitempty" yaml:"name,omitempty"`
	Requirements Requirements `json:"requirements" yaml:"requirements"`
	Result       Result       `json:"result" yaml:"result"`
}
