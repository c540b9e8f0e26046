package emulator

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/vm16/cpu"
	"github.com/ezrec/vm16/io"
	"github.com/ezrec/vm16/program"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Equal(cpu.STACK_TOP, emu.Cpu.Registers.Get(cpu.REG_SP))

	regions := []io.Region{}
	for rg := range emu.Mapper.Regions() {
		regions = append(regions, rg)
	}
	if assert.Len(regions, 2) {
		assert.Equal(uint16(SCREEN_BASE), regions[0].Start)
		assert.Equal(uint16(SCREEN_END), regions[0].End)
		assert.Equal(uint16(RAM_BASE), regions[1].Start)
		assert.Equal(uint16(RAM_END), regions[1].End)
	}
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	defines := map[string]int{}
	for key, value := range emu.Defines() {
		defines[key] = value
	}

	assert.Equal(0x3000, defines["SCREEN_BASE"])
	assert.Equal(0x30ff, defines["SCREEN_END"])
	assert.Equal(0xff, defines["SCREEN_CMD_CLEAR"])
	assert.Equal(0xff, defines["HLT"])
	assert.Equal(0x5e, defines["CAL_LIT"])
	assert.Equal(10, defines["SP"])
}

// doLoad builds an image from script source, and loads it.
func doLoad(emu *Emulator, script []string, t *testing.T) {
	image, err := program.Load("test.star", strings.Join(script, "\n"), emu.Defines())
	require.NoError(t, err)

	err = emu.Load(image)
	require.NoError(t, err)
}

// doRun ticks the emulator until it is done.
func doRun(emu *Emulator, t *testing.T) {
	assert := assert.New(t)

	for n := 0; n < 10000; n++ {
		done, err := emu.Tick()
		if !assert.NoError(err) {
			t.Log(emu.Cpu.String())
			t.FailNow()
		}
		if done {
			return
		}
	}

	t.Fatalf("program did not halt")
}

func TestEmulatorScreen(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	output := &bytes.Buffer{}
	emu.Screen.Output = output

	doLoad(emu, []string{
		"main = [",
		"    MOV_LIT_MEM, word(0xff48), word(SCREEN_BASE + cell(0, 0)),",
		"    MOV_LIT_MEM, word(0x0149), word(SCREEN_BASE + cell(1, 0)),",
		"    PSH_LIT, word(0x0221),",
		"    PSH_LIT, word(1),",
		"    CAL_LIT, word(0x0100),",
		"    HLT,",
		"]",
		"putc = [",
		"    MOV_REG_REG, FP, R1,",
		"    MOV_LIT_OFF_REG, word(0x18), R1, R2,",
		"    MOV_REG_MEM, R2, word(SCREEN_BASE + cell(2, 1)),",
		"    RET,",
		"]",
		"program = main + [0] * (0x100 - len(main)) + putc",
	}, t)

	doRun(emu, t)

	assert.Equal("\x1b[2J\x1b[1;2HH"+"\x1b[1m\x1b[1;4HI"+"\x1b[0m\x1b[2;6H!", output.String())
	assert.Equal(10, emu.Ticks())
	assert.Equal(uint16(0x0014), emu.Ip())
	assert.Equal(uint16(0), emu.Cpu.Registers.Get(cpu.REG_R1))
	assert.Equal(cpu.STACK_TOP, emu.Cpu.Registers.Get(cpu.REG_SP))
	assert.Equal(cpu.STACK_TOP, emu.Cpu.Registers.Get(cpu.REG_FP))

	// RAM under the screen is untouched.
	value, err := emu.Ram.Read16(SCREEN_BASE)
	assert.NoError(err)
	assert.Equal(uint16(0), value)

	// Ticking a halted machine stays done.
	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(10, emu.Ticks())
}

func TestEmulatorScreenOff(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	output := &bytes.Buffer{}
	emu.Screen.Output = output

	assert.NoError(emu.SetScreen(false))
	assert.NoError(emu.SetScreen(false))

	doLoad(emu, []string{
		"program = [",
		"    MOV_LIT_MEM, word(0x0141), word(SCREEN_BASE),",
		"    HLT,",
		"]",
	}, t)
	doRun(emu, t)

	assert.Empty(output.String())
	value, err := emu.Ram.Read16(SCREEN_BASE)
	assert.NoError(err)
	assert.Equal(uint16(0x0141), value)

	assert.NoError(emu.SetScreen(true))
	assert.NoError(emu.Reset())
	doRun(emu, t)
	assert.Equal("\x1b[1m\x1b[1;2HA", output.String())
}

func TestEmulatorCountdown(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	doLoad(emu, []string{
		"origin = 0x0200",
		"entry = 0x0204",
		"loop = 0x0208",
		"program = [",
		"    0xde, 0xad, 0xbe, 0xef,",
		"    MOV_LIT_REG, word(5), R1,",
		"    DEC_REG, R1,",
		"    ADD_REG_REG, R1, R2,",
		"    MOV_REG_REG, AC, R2,",
		"    MOV_REG_REG, R1, AC,",
		"    JNE_LIT, word(0), word(loop),",
		"    HLT,",
		"]",
	}, t)

	assert.Equal(uint16(0x0204), emu.Ip())
	doRun(emu, t)

	assert.Equal(uint16(0), emu.Cpu.Registers.Get(cpu.REG_R1))
	assert.Equal(uint16(4+3+2+1+0), emu.Cpu.Registers.Get(cpu.REG_R2))

	value, err := emu.Ram.Read16(0x0200)
	assert.NoError(err)
	assert.Equal(uint16(0xdead), value)

	// Reset replays the image from its entry point.
	emu.Cpu.Registers.Set(cpu.REG_R2, 0x1234)
	assert.NoError(emu.Ram.Write16(0x0200, 0))
	assert.NoError(emu.Reset())
	value, err = emu.Ram.Read16(0x0200)
	assert.NoError(err)
	assert.Equal(uint16(0xdead), value)
	assert.Equal(uint16(0), emu.Cpu.Registers.Get(cpu.REG_R2))
	assert.Equal(uint16(0x0204), emu.Ip())
	assert.Equal(0, emu.Ticks())

	ins, err := emu.Instruction()
	assert.NoError(err)
	assert.Equal("MOV_LIT_REG 0x0005, r1", ins.String())
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	doLoad(emu, []string{
		"program = [MOV_LIT_REG, word(1), R1, 0x00]",
	}, t)

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)

	done, err = emu.Tick()
	assert.False(done)
	assert.ErrorIs(err, cpu.ErrOpcodeInvalid)

	var rt_err *ErrRuntime
	if assert.True(errors.As(err, &rt_err)) {
		assert.Equal(uint16(0x0004), rt_err.Ip)
		assert.True(strings.HasPrefix(rt_err.Error(), "ip 0x0004 "))
	}

	// The opcode byte was consumed.
	_, err = emu.Instruction()
	assert.ErrorIs(err, cpu.ErrOpcodeInvalid)

	assert.NoError(emu.Reset())
	err = emu.Run(context.Background())
	assert.ErrorIs(err, cpu.ErrOpcodeInvalid)
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	doLoad(emu, []string{
		"program = [INC_REG, R1, INC_REG, R1, HLT]",
	}, t)

	assert.NoError(emu.Run(context.Background()))
	assert.Equal(uint16(2), emu.Cpu.Registers.Get(cpu.REG_R1))
	assert.True(emu.Cpu.Halted)

	// Spin forever on the first instruction.
	doLoad(emu, []string{
		"program = [JNE_LIT, word(1), word(0)]",
	}, t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := emu.Run(ctx)
	assert.ErrorIs(err, context.DeadlineExceeded)
	assert.Greater(emu.Ticks(), 0)
}

func TestEmulatorLoadError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	err := emu.Load(program.Image{Origin: 0xffff, Bytes: []byte{1, 2}})
	assert.ErrorIs(err, io.ErrAddressRange)
}
