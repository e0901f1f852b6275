// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

package ioreg

// Size of the I/O register page.
const Size = 0x400

// Offsets of the named registers from the start of the I/O page.
const (
	DISPCNT   = 0x000
	GREENSWAP = 0x002
	DISPSTAT  = 0x004
	VCOUNT    = 0x006

	BG0CNT = 0x008
	BG1CNT = 0x00a
	BG2CNT = 0x00c
	BG3CNT = 0x00e

	BG0HOFS = 0x010
	BG0VOFS = 0x012
	BG1HOFS = 0x014
	BG1VOFS = 0x016
	BG2HOFS = 0x018
	BG2VOFS = 0x01a
	BG3HOFS = 0x01c
	BG3VOFS = 0x01e

	BG2PA = 0x020
	BG2PB = 0x022
	BG2PC = 0x024
	BG2PD = 0x026
	BG2X  = 0x028
	BG2Y  = 0x02c
	BG3PA = 0x030
	BG3PB = 0x032
	BG3PC = 0x034
	BG3PD = 0x036
	BG3X  = 0x038
	BG3Y  = 0x03c

	WIN0H  = 0x040
	WIN1H  = 0x042
	WIN0V  = 0x044
	WIN1V  = 0x046
	WININ  = 0x048
	WINOUT = 0x04a

	MOSAIC   = 0x04c
	BLDCNT   = 0x050
	BLDALPHA = 0x052
	BLDY     = 0x054

	SOUND1CNT_L = 0x060
	SOUND1CNT_H = 0x062
	SOUND1CNT_X = 0x064
	SOUND2CNT_L = 0x068
	SOUND2CNT_H = 0x06c
	SOUND3CNT_L = 0x070
	SOUND3CNT_H = 0x072
	SOUND3CNT_X = 0x074
	SOUND4CNT_L = 0x078
	SOUND4CNT_H = 0x07c
	SOUNDCNT_L  = 0x080
	SOUNDCNT_H  = 0x082
	SOUNDCNT_X  = 0x084
	SOUNDBIAS   = 0x088
	WAVE_RAM    = 0x090
	FIFO_A      = 0x0a0
	FIFO_B      = 0x0a4

	DMA0SAD   = 0x0b0
	DMA0DAD   = 0x0b4
	DMA0CNT_L = 0x0b8
	DMA0CNT_H = 0x0ba

	TM0CNT_L = 0x100
	TM0CNT_H = 0x102

	SIODATA32 = 0x120
	SIOMULTI2 = 0x124
	SIOMULTI3 = 0x126
	SIOCNT    = 0x128
	SIODATA8  = 0x12a
	KEYINPUT  = 0x130
	KEYCNT    = 0x132
	RCNT      = 0x134
	JOYCNT    = 0x140
	JOY_RECV  = 0x150
	JOY_TRANS = 0x154
	JOYSTAT   = 0x158

	IE      = 0x200
	IF      = 0x202
	WAITCNT = 0x204
	IME     = 0x208
	POSTFLG = 0x300
	HALTCNT = 0x301
)

// the DMA and timer register sets repeat at a fixed stride
const (
	DMAStride   = 12
	TimerStride = 4
)

// DMA returns the offset of the register for DMA channel n. The reg argument
// should be one of the DMA0 registers.
func DMA(n int, reg uint32) uint32 {
	return reg + uint32(n)*DMAStride
}

// Timer returns the offset of the register for timer n. The reg argument
// should be one of the TM0 registers.
func Timer(n int, reg uint32) uint32 {
	return reg + uint32(n)*TimerStride
}

// a named register in the I/O page
type register struct {
	name   string
	offset uint32

	// width in bytes
	width int

	// bits that can be read and written by the CPU
	read  uint32
	write uint32
}

// masks from GBATEK. registers not in this list are unmapped
var registers = []register{
	{name: "DISPCNT", offset: DISPCNT, width: 2, read: 0xffff, write: 0xfff7},
	{name: "GREENSWAP", offset: GREENSWAP, width: 2, read: 0x0001, write: 0x0001},
	{name: "DISPSTAT", offset: DISPSTAT, width: 2, read: 0xff3f, write: 0xff38},
	{name: "VCOUNT", offset: VCOUNT, width: 2, read: 0x00ff, write: 0x0000},

	{name: "BG0CNT", offset: BG0CNT, width: 2, read: 0xdfff, write: 0xdfff},
	{name: "BG1CNT", offset: BG1CNT, width: 2, read: 0xdfff, write: 0xdfff},
	{name: "BG2CNT", offset: BG2CNT, width: 2, read: 0xffff, write: 0xffff},
	{name: "BG3CNT", offset: BG3CNT, width: 2, read: 0xffff, write: 0xffff},

	{name: "BG0HOFS", offset: BG0HOFS, width: 2, write: 0x01ff},
	{name: "BG0VOFS", offset: BG0VOFS, width: 2, write: 0x01ff},
	{name: "BG1HOFS", offset: BG1HOFS, width: 2, write: 0x01ff},
	{name: "BG1VOFS", offset: BG1VOFS, width: 2, write: 0x01ff},
	{name: "BG2HOFS", offset: BG2HOFS, width: 2, write: 0x01ff},
	{name: "BG2VOFS", offset: BG2VOFS, width: 2, write: 0x01ff},
	{name: "BG3HOFS", offset: BG3HOFS, width: 2, write: 0x01ff},
	{name: "BG3VOFS", offset: BG3VOFS, width: 2, write: 0x01ff},

	{name: "BG2PA", offset: BG2PA, width: 2, write: 0xffff},
	{name: "BG2PB", offset: BG2PB, width: 2, write: 0xffff},
	{name: "BG2PC", offset: BG2PC, width: 2, write: 0xffff},
	{name: "BG2PD", offset: BG2PD, width: 2, write: 0xffff},
	{name: "BG2X", offset: BG2X, width: 4, write: 0x0fffffff},
	{name: "BG2Y", offset: BG2Y, width: 4, write: 0x0fffffff},
	{name: "BG3PA", offset: BG3PA, width: 2, write: 0xffff},
	{name: "BG3PB", offset: BG3PB, width: 2, write: 0xffff},
	{name: "BG3PC", offset: BG3PC, width: 2, write: 0xffff},
	{name: "BG3PD", offset: BG3PD, width: 2, write: 0xffff},
	{name: "BG3X", offset: BG3X, width: 4, write: 0x0fffffff},
	{name: "BG3Y", offset: BG3Y, width: 4, write: 0x0fffffff},

	{name: "WIN0H", offset: WIN0H, width: 2, write: 0xffff},
	{name: "WIN1H", offset: WIN1H, width: 2, write: 0xffff},
	{name: "WIN0V", offset: WIN0V, width: 2, write: 0xffff},
	{name: "WIN1V", offset: WIN1V, width: 2, write: 0xffff},
	{name: "WININ", offset: WININ, width: 2, read: 0x3f3f, write: 0x3f3f},
	{name: "WINOUT", offset: WINOUT, width: 2, read: 0x3f3f, write: 0x3f3f},

	{name: "MOSAIC", offset: MOSAIC, width: 2, write: 0xffff},
	{name: "BLDCNT", offset: BLDCNT, width: 2, read: 0x3fff, write: 0x3fff},
	{name: "BLDALPHA", offset: BLDALPHA, width: 2, read: 0x1f1f, write: 0x1f1f},
	{name: "BLDY", offset: BLDY, width: 2, write: 0x001f},

	// sound registers are storage only. there is no sound synthesis
	{name: "SOUND1CNT_L", offset: SOUND1CNT_L, width: 2, read: 0x007f, write: 0x007f},
	{name: "SOUND1CNT_H", offset: SOUND1CNT_H, width: 2, read: 0xffc0, write: 0xffff},
	{name: "SOUND1CNT_X", offset: SOUND1CNT_X, width: 2, read: 0x4000, write: 0xc7ff},
	{name: "SOUND2CNT_L", offset: SOUND2CNT_L, width: 2, read: 0xffc0, write: 0xffff},
	{name: "SOUND2CNT_H", offset: SOUND2CNT_H, width: 2, read: 0x4000, write: 0xc7ff},
	{name: "SOUND3CNT_L", offset: SOUND3CNT_L, width: 2, read: 0x00e0, write: 0x00e0},
	{name: "SOUND3CNT_H", offset: SOUND3CNT_H, width: 2, read: 0xe000, write: 0xe0ff},
	{name: "SOUND3CNT_X", offset: SOUND3CNT_X, width: 2, read: 0x4000, write: 0xc7ff},
	{name: "SOUND4CNT_L", offset: SOUND4CNT_L, width: 2, read: 0xff00, write: 0xff3f},
	{name: "SOUND4CNT_H", offset: SOUND4CNT_H, width: 2, read: 0x40ff, write: 0xc0ff},
	{name: "SOUNDCNT_L", offset: SOUNDCNT_L, width: 2, read: 0xff77, write: 0xff77},
	{name: "SOUNDCNT_H", offset: SOUNDCNT_H, width: 2, read: 0x770f, write: 0xff0f},
	{name: "SOUNDCNT_X", offset: SOUNDCNT_X, width: 2, read: 0x008f, write: 0x0080},
	{name: "SOUNDBIAS", offset: SOUNDBIAS, width: 2, read: 0xc3fe, write: 0xc3fe},
	{name: "WAVE_RAM0", offset: WAVE_RAM, width: 4, read: 0xffffffff, write: 0xffffffff},
	{name: "WAVE_RAM1", offset: WAVE_RAM + 4, width: 4, read: 0xffffffff, write: 0xffffffff},
	{name: "WAVE_RAM2", offset: WAVE_RAM + 8, width: 4, read: 0xffffffff, write: 0xffffffff},
	{name: "WAVE_RAM3", offset: WAVE_RAM + 12, width: 4, read: 0xffffffff, write: 0xffffffff},
	{name: "FIFO_A", offset: FIFO_A, width: 4, write: 0xffffffff},
	{name: "FIFO_B", offset: FIFO_B, width: 4, write: 0xffffffff},

	{name: "DMA0SAD", offset: DMA(0, DMA0SAD), width: 4, write: 0x07ffffff},
	{name: "DMA0DAD", offset: DMA(0, DMA0DAD), width: 4, write: 0x07ffffff},
	{name: "DMA0CNT_L", offset: DMA(0, DMA0CNT_L), width: 2, write: 0x3fff},
	{name: "DMA0CNT_H", offset: DMA(0, DMA0CNT_H), width: 2, read: 0xf7e0, write: 0xf7e0},
	{name: "DMA1SAD", offset: DMA(1, DMA0SAD), width: 4, write: 0x0fffffff},
	{name: "DMA1DAD", offset: DMA(1, DMA0DAD), width: 4, write: 0x07ffffff},
	{name: "DMA1CNT_L", offset: DMA(1, DMA0CNT_L), width: 2, write: 0x3fff},
	{name: "DMA1CNT_H", offset: DMA(1, DMA0CNT_H), width: 2, read: 0xf7e0, write: 0xf7e0},
	{name: "DMA2SAD", offset: DMA(2, DMA0SAD), width: 4, write: 0x0fffffff},
	{name: "DMA2DAD", offset: DMA(2, DMA0DAD), width: 4, write: 0x07ffffff},
	{name: "DMA2CNT_L", offset: DMA(2, DMA0CNT_L), width: 2, write: 0x3fff},
	{name: "DMA2CNT_H", offset: DMA(2, DMA0CNT_H), width: 2, read: 0xf7e0, write: 0xf7e0},
	{name: "DMA3SAD", offset: DMA(3, DMA0SAD), width: 4, write: 0x0fffffff},
	{name: "DMA3DAD", offset: DMA(3, DMA0DAD), width: 4, write: 0x0fffffff},
	{name: "DMA3CNT_L", offset: DMA(3, DMA0CNT_L), width: 2, write: 0xffff},
	{name: "DMA3CNT_H", offset: DMA(3, DMA0CNT_H), width: 2, read: 0xffe0, write: 0xffe0},

	{name: "TM0CNT_L", offset: Timer(0, TM0CNT_L), width: 2, read: 0xffff, write: 0xffff},
	{name: "TM0CNT_H", offset: Timer(0, TM0CNT_H), width: 2, read: 0x00c7, write: 0x00c7},
	{name: "TM1CNT_L", offset: Timer(1, TM0CNT_L), width: 2, read: 0xffff, write: 0xffff},
	{name: "TM1CNT_H", offset: Timer(1, TM0CNT_H), width: 2, read: 0x00c7, write: 0x00c7},
	{name: "TM2CNT_L", offset: Timer(2, TM0CNT_L), width: 2, read: 0xffff, write: 0xffff},
	{name: "TM2CNT_H", offset: Timer(2, TM0CNT_H), width: 2, read: 0x00c7, write: 0x00c7},
	{name: "TM3CNT_L", offset: Timer(3, TM0CNT_L), width: 2, read: 0xffff, write: 0xffff},
	{name: "TM3CNT_H", offset: Timer(3, TM0CNT_H), width: 2, read: 0x00c7, write: 0x00c7},

	// serial registers are storage only. there is no link cable
	{name: "SIODATA32", offset: SIODATA32, width: 4, read: 0xffffffff, write: 0xffffffff},
	{name: "SIOMULTI2", offset: SIOMULTI2, width: 2, read: 0xffff, write: 0xffff},
	{name: "SIOMULTI3", offset: SIOMULTI3, width: 2, read: 0xffff, write: 0xffff},
	{name: "SIOCNT", offset: SIOCNT, width: 2, read: 0x7fff, write: 0x7fff},
	{name: "SIODATA8", offset: SIODATA8, width: 2, read: 0xffff, write: 0xffff},
	{name: "KEYINPUT", offset: KEYINPUT, width: 2, read: 0x03ff, write: 0x0000},
	{name: "KEYCNT", offset: KEYCNT, width: 2, read: 0xc3ff, write: 0xc3ff},
	{name: "RCNT", offset: RCNT, width: 2, read: 0xc1ff, write: 0xc1ff},
	{name: "JOYCNT", offset: JOYCNT, width: 2, read: 0x0047, write: 0x0047},
	{name: "JOY_RECV", offset: JOY_RECV, width: 4, read: 0xffffffff, write: 0xffffffff},
	{name: "JOY_TRANS", offset: JOY_TRANS, width: 4, read: 0xffffffff, write: 0xffffffff},
	{name: "JOYSTAT", offset: JOYSTAT, width: 2, read: 0x003a, write: 0x0030},

	{name: "IE", offset: IE, width: 2, read: 0x3fff, write: 0x3fff},
	{name: "IF", offset: IF, width: 2, read: 0x3fff, write: 0x3fff},
	{name: "WAITCNT", offset: WAITCNT, width: 2, read: 0xdfff, write: 0x5fff},
	{name: "IME", offset: IME, width: 2, read: 0x0001, write: 0x0001},
	{name: "POSTFLG", offset: POSTFLG, width: 1, read: 0x01, write: 0x01},
	{name: "HALTCNT", offset: HALTCNT, width: 1, write: 0x80},
}
