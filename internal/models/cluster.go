package models

type Baseline struct {
	Master    NodeGroup `json:"master" yaml:"master"`
	Worker    NodeGroup `json:"worker" yaml:"worker"`
	Secondary NodeGroup `json:"secondary" yaml:"secondary"`
}

// Groups returns the node groups in the order they are reported.
func (b Baseline) Groups() []NodeGroup {
	return []NodeGroup{b.Master, b.Worker, b.Secondary}
}

// Primary is the CPU and memory of the master and worker groups together.
func (b Baseline) Primary() (cpu, memory int) {
	return b.Master.TotalCPU() + b.Worker.TotalCPU(), b.Master.TotalMemory() + b.Worker.TotalMemory()
}

type NodeGroup struct {
	Name      string        `json:"name" yaml:"name"`
	Count     int           `json:"count" yaml:"count" validate:"gte=0,lte=1000000"`
	Resources HostResources `json:"resources" yaml:"resources"`
}

func (g NodeGroup) TotalCPU() int {
	return g.Count * g.Resources.CPU
}

func (g NodeGroup) TotalMemory() int {
	return g.Count * g.Resources.Memory
}

func (g NodeGroup) TotalStorage() int {
	return g.Count * (g.Resources.OSDisk + g.Resources.LonghornDisk)
}

func (g NodeGroup) TotalLocalDisk() int {
	return g.Count * g.Resources.LocalDisk
}

type HostResources struct {
	CPU          int `json:"cpu" yaml:"cpu" validate:"gte=0,lte=1000000"`
	Memory       int `json:"memory" yaml:"memory" validate:"gte=0,lte=1000000"`
	OSDisk       int `json:"os_disk" yaml:"os_disk" validate:"gte=0,lte=1000000"`
	LonghornDisk int `json:"longhorn_disk" yaml:"longhorn_disk" validate:"gte=0,lte=1000000"`
	LocalDisk    int `json:"local_disk" yaml:"local_disk" validate:"gte=0,lte=1000000"`
}

func DefaultBaseline() Baseline {
	return Baseline{
		Master: NodeGroup{
			Name:  "ECS Master/Server",
			Count: 1,
			Resources: HostResources{
				CPU:          32,
				Memory:       64,
				OSDisk:       1000,
				LonghornDisk: 235,
			},
		},
		Worker: NodeGroup{
			Name:  "ECS Worker/Agent",
			Count: 14,
			Resources: HostResources{
				CPU:          64,
				Memory:       256,
				OSDisk:       1000,
				LonghornDisk: 235,
				LocalDisk:    630,
			},
		},
		Secondary: NodeGroup{
			Name:  "Openshift 4 Worker",
			Count: 30,
			Resources: HostResources{
				CPU:    32,
				Memory: 128,
			},
		},
	}
}
