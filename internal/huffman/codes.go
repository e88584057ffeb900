// Copyright 2017 Hajime Hoshi
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package huffman

// Code words of ISO/IEC 11172-3 Annex B Table 3-B.7, written as
// {length, code, x<<4 | y}. Tables that share a code and differ only in
// linbits point to the same list.

var codes1 = []codeword{
	{1, 0x1, 0x00}, {3, 0x1, 0x01}, {2, 0x1, 0x10}, {3, 0x0, 0x11},
}

var codes2 = []codeword{
	{1, 0x1, 0x00}, {3, 0x2, 0x01}, {6, 0x1, 0x02}, {3, 0x3, 0x10}, {3, 0x1, 0x11}, {5, 0x1, 0x12},
	{5, 0x3, 0x20}, {5, 0x2, 0x21}, {6, 0x0, 0x22},
}

var codes3 = []codeword{
	{2, 0x3, 0x00}, {2, 0x2, 0x01}, {6, 0x1, 0x02}, {3, 0x1, 0x10}, {2, 0x1, 0x11}, {5, 0x1, 0x12},
	{5, 0x3, 0x20}, {5, 0x2, 0x21}, {6, 0x0, 0x22},
}

var codes5 = []codeword{
	{1, 0x1, 0x00}, {3, 0x2, 0x01}, {6, 0x6, 0x02}, {7, 0x5, 0x03}, {3, 0x3, 0x10}, {3, 0x1, 0x11},
	{6, 0x4, 0x12}, {7, 0x4, 0x13}, {6, 0x7, 0x20}, {6, 0x5, 0x21}, {7, 0x7, 0x22}, {8, 0x1, 0x23},
	{7, 0x6, 0x30}, {6, 0x1, 0x31}, {7, 0x1, 0x32}, {8, 0x0, 0x33},
}

var codes6 = []codeword{
	{3, 0x7, 0x00}, {3, 0x3, 0x01}, {5, 0x5, 0x02}, {7, 0x1, 0x03}, {3, 0x6, 0x10}, {2, 0x2, 0x11},
	{4, 0x3, 0x12}, {5, 0x2, 0x13}, {4, 0x5, 0x20}, {4, 0x4, 0x21}, {5, 0x4, 0x22}, {6, 0x1, 0x23},
	{6, 0x3, 0x30}, {5, 0x3, 0x31}, {6, 0x2, 0x32}, {7, 0x0, 0x33},
}

var codes7 = []codeword{
	{1, 0x1, 0x00}, {3, 0x2, 0x01}, {6, 0xa, 0x02}, {8, 0x13, 0x03}, {8, 0x10, 0x04}, {9, 0xa, 0x05},
	{3, 0x3, 0x10}, {4, 0x3, 0x11}, {6, 0x7, 0x12}, {7, 0xa, 0x13}, {7, 0x5, 0x14}, {8, 0x3, 0x15},
	{6, 0xb, 0x20}, {5, 0x4, 0x21}, {7, 0xd, 0x22}, {8, 0x11, 0x23}, {8, 0x8, 0x24}, {9, 0x4, 0x25},
	{7, 0xc, 0x30}, {7, 0xb, 0x31}, {8, 0x12, 0x32}, {9, 0xf, 0x33}, {9, 0xb, 0x34}, {9, 0x2, 0x35},
	{7, 0x7, 0x40}, {7, 0x6, 0x41}, {8, 0x9, 0x42}, {9, 0xe, 0x43}, {9, 0x3, 0x44}, {10, 0x1, 0x45},
	{8, 0x6, 0x50}, {8, 0x4, 0x51}, {9, 0x5, 0x52}, {10, 0x3, 0x53}, {10, 0x2, 0x54}, {10, 0x0, 0x55},
}

var codes8 = []codeword{
	{2, 0x3, 0x00}, {3, 0x4, 0x01}, {6, 0x6, 0x02}, {8, 0x12, 0x03}, {8, 0xc, 0x04}, {9, 0x5, 0x05},
	{3, 0x5, 0x10}, {2, 0x1, 0x11}, {4, 0x2, 0x12}, {8, 0x10, 0x13}, {8, 0x9, 0x14}, {8, 0x3, 0x15},
	{6, 0x7, 0x20}, {4, 0x3, 0x21}, {6, 0x5, 0x22}, {8, 0xe, 0x23}, {8, 0x7, 0x24}, {9, 0x3, 0x25},
	{8, 0x13, 0x30}, {8, 0x11, 0x31}, {8, 0xf, 0x32}, {9, 0xd, 0x33}, {9, 0xa, 0x34}, {10, 0x4, 0x35},
	{8, 0xd, 0x40}, {7, 0x5, 0x41}, {8, 0x8, 0x42}, {9, 0xb, 0x43}, {10, 0x5, 0x44}, {10, 0x1, 0x45},
	{9, 0xc, 0x50}, {8, 0x4, 0x51}, {9, 0x4, 0x52}, {9, 0x1, 0x53}, {11, 0x1, 0x54}, {11, 0x0, 0x55},
}

var codes9 = []codeword{
	{3, 0x7, 0x00}, {3, 0x5, 0x01}, {5, 0x9, 0x02}, {6, 0xe, 0x03}, {8, 0xf, 0x04}, {9, 0x7, 0x05},
	{3, 0x6, 0x10}, {3, 0x4, 0x11}, {4, 0x5, 0x12}, {5, 0x5, 0x13}, {6, 0x6, 0x14}, {8, 0x7, 0x15},
	{4, 0x7, 0x20}, {4, 0x6, 0x21}, {5, 0x8, 0x22}, {6, 0x8, 0x23}, {7, 0x8, 0x24}, {8, 0x5, 0x25},
	{6, 0xf, 0x30}, {5, 0x6, 0x31}, {6, 0x9, 0x32}, {7, 0xa, 0x33}, {7, 0x5, 0x34}, {8, 0x1, 0x35},
	{7, 0xb, 0x40}, {6, 0x7, 0x41}, {7, 0x9, 0x42}, {7, 0x6, 0x43}, {8, 0x4, 0x44}, {9, 0x1, 0x45},
	{8, 0xe, 0x50}, {7, 0x4, 0x51}, {8, 0x6, 0x52}, {8, 0x2, 0x53}, {9, 0x6, 0x54}, {9, 0x0, 0x55},
}

var codes10 = []codeword{
	{1, 0x1, 0x00}, {3, 0x2, 0x01}, {6, 0xa, 0x02}, {8, 0x17, 0x03}, {9, 0x23, 0x04}, {9, 0x1e, 0x05},
	{9, 0xc, 0x06}, {10, 0x11, 0x07}, {3, 0x3, 0x10}, {4, 0x3, 0x11}, {6, 0x8, 0x12}, {7, 0xc, 0x13},
	{8, 0x12, 0x14}, {9, 0x15, 0x15}, {8, 0xc, 0x16}, {8, 0x7, 0x17}, {6, 0xb, 0x20}, {6, 0x9, 0x21},
	{7, 0xf, 0x22}, {8, 0x15, 0x23}, {9, 0x20, 0x24}, {10, 0x28, 0x25}, {9, 0x13, 0x26}, {9, 0x6, 0x27},
	{7, 0xe, 0x30}, {7, 0xd, 0x31}, {8, 0x16, 0x32}, {9, 0x22, 0x33}, {10, 0x2e, 0x34}, {10, 0x17, 0x35},
	{9, 0x12, 0x36}, {10, 0x7, 0x37}, {8, 0x14, 0x40}, {8, 0x13, 0x41}, {9, 0x21, 0x42}, {10, 0x2f, 0x43},
	{10, 0x1b, 0x44}, {10, 0x16, 0x45}, {10, 0x9, 0x46}, {10, 0x3, 0x47}, {9, 0x1f, 0x50}, {9, 0x16, 0x51},
	{10, 0x29, 0x52}, {10, 0x1a, 0x53}, {11, 0x15, 0x54}, {11, 0x14, 0x55}, {10, 0x5, 0x56}, {11, 0x3, 0x57},
	{8, 0xe, 0x60}, {8, 0xd, 0x61}, {9, 0xa, 0x62}, {10, 0xb, 0x63}, {10, 0x10, 0x64}, {10, 0x6, 0x65},
	{11, 0x5, 0x66}, {11, 0x1, 0x67}, {9, 0x9, 0x70}, {8, 0x8, 0x71}, {9, 0x7, 0x72}, {10, 0x8, 0x73},
	{10, 0x4, 0x74}, {11, 0x4, 0x75}, {11, 0x2, 0x76}, {11, 0x0, 0x77},
}

var codes11 = []codeword{
	{2, 0x3, 0x00}, {3, 0x4, 0x01}, {5, 0xa, 0x02}, {7, 0x18, 0x03}, {8, 0x22, 0x04}, {9, 0x21, 0x05},
	{8, 0x15, 0x06}, {9, 0xf, 0x07}, {3, 0x5, 0x10}, {3, 0x3, 0x11}, {4, 0x4, 0x12}, {6, 0xa, 0x13},
	{8, 0x20, 0x14}, {8, 0x11, 0x15}, {7, 0xb, 0x16}, {8, 0xa, 0x17}, {5, 0xb, 0x20}, {5, 0x7, 0x21},
	{6, 0xd, 0x22}, {7, 0x12, 0x23}, {8, 0x1e, 0x24}, {9, 0x1f, 0x25}, {8, 0x14, 0x26}, {8, 0x5, 0x27},
	{7, 0x19, 0x30}, {6, 0xb, 0x31}, {7, 0x13, 0x32}, {9, 0x3b, 0x33}, {8, 0x1b, 0x34}, {10, 0x12, 0x35},
	{8, 0xc, 0x36}, {9, 0x5, 0x37}, {8, 0x23, 0x40}, {8, 0x21, 0x41}, {8, 0x1f, 0x42}, {9, 0x3a, 0x43},
	{9, 0x1e, 0x44}, {10, 0x10, 0x45}, {9, 0x7, 0x46}, {10, 0x5, 0x47}, {8, 0x1c, 0x50}, {8, 0x1a, 0x51},
	{9, 0x20, 0x52}, {10, 0x13, 0x53}, {10, 0x11, 0x54}, {11, 0xf, 0x55}, {10, 0x8, 0x56}, {11, 0xe, 0x57},
	{8, 0xe, 0x60}, {7, 0xc, 0x61}, {7, 0x9, 0x62}, {8, 0xd, 0x63}, {9, 0xe, 0x64}, {10, 0x9, 0x65},
	{10, 0x4, 0x66}, {10, 0x1, 0x67}, {8, 0xb, 0x70}, {7, 0x4, 0x71}, {8, 0x6, 0x72}, {9, 0x6, 0x73},
	{10, 0x6, 0x74}, {10, 0x3, 0x75}, {10, 0x2, 0x76}, {10, 0x0, 0x77},
}

var codes12 = []codeword{
	{4, 0x9, 0x00}, {3, 0x6, 0x01}, {5, 0x10, 0x02}, {7, 0x21, 0x03}, {8, 0x29, 0x04}, {9, 0x27, 0x05},
	{9, 0x26, 0x06}, {9, 0x1a, 0x07}, {3, 0x7, 0x10}, {3, 0x5, 0x11}, {4, 0x6, 0x12}, {5, 0x9, 0x13},
	{7, 0x17, 0x14}, {7, 0x10, 0x15}, {8, 0x1a, 0x16}, {8, 0xb, 0x17}, {5, 0x11, 0x20}, {4, 0x7, 0x21},
	{5, 0xb, 0x22}, {6, 0xe, 0x23}, {7, 0x15, 0x24}, {8, 0x1e, 0x25}, {7, 0xa, 0x26}, {8, 0x7, 0x27},
	{6, 0x11, 0x30}, {5, 0xa, 0x31}, {6, 0xf, 0x32}, {6, 0xc, 0x33}, {7, 0x12, 0x34}, {8, 0x1c, 0x35},
	{8, 0xe, 0x36}, {8, 0x5, 0x37}, {7, 0x20, 0x40}, {6, 0xd, 0x41}, {7, 0x16, 0x42}, {7, 0x13, 0x43},
	{8, 0x12, 0x44}, {8, 0x10, 0x45}, {8, 0x9, 0x46}, {9, 0x5, 0x47}, {8, 0x28, 0x50}, {7, 0x11, 0x51},
	{8, 0x1f, 0x52}, {8, 0x1d, 0x53}, {8, 0x11, 0x54}, {9, 0xd, 0x55}, {8, 0x4, 0x56}, {9, 0x2, 0x57},
	{8, 0x1b, 0x60}, {7, 0xc, 0x61}, {7, 0xb, 0x62}, {8, 0xf, 0x63}, {8, 0xa, 0x64}, {9, 0x7, 0x65},
	{9, 0x4, 0x66}, {10, 0x1, 0x67}, {9, 0x1b, 0x70}, {8, 0xc, 0x71}, {8, 0x8, 0x72}, {9, 0xc, 0x73},
	{9, 0x6, 0x74}, {9, 0x3, 0x75}, {9, 0x1, 0x76}, {10, 0x0, 0x77},
}

var codes13 = []codeword{
	{1, 0x1, 0x00}, {4, 0x5, 0x01}, {6, 0xe, 0x02}, {7, 0x15, 0x03}, {8, 0x22, 0x04}, {9, 0x33, 0x05},
	{9, 0x2e, 0x06}, {10, 0x47, 0x07}, {9, 0x2a, 0x08}, {10, 0x34, 0x09}, {11, 0x44, 0x0a}, {11, 0x34, 0x0b},
	{12, 0x43, 0x0c}, {12, 0x2c, 0x0d}, {13, 0x2b, 0x0e}, {13, 0x13, 0x0f}, {3, 0x3, 0x10}, {4, 0x4, 0x11},
	{6, 0xc, 0x12}, {7, 0x13, 0x13}, {8, 0x1f, 0x14}, {8, 0x1a, 0x15}, {9, 0x2c, 0x16}, {9, 0x21, 0x17},
	{9, 0x1f, 0x18}, {9, 0x18, 0x19}, {10, 0x20, 0x1a}, {10, 0x18, 0x1b}, {11, 0x1f, 0x1c}, {12, 0x23, 0x1d},
	{12, 0x16, 0x1e}, {12, 0xe, 0x1f}, {6, 0xf, 0x20}, {6, 0xd, 0x21}, {7, 0x17, 0x22}, {8, 0x24, 0x23},
	{9, 0x3b, 0x24}, {9, 0x31, 0x25}, {10, 0x4d, 0x26}, {10, 0x41, 0x27}, {9, 0x1d, 0x28}, {10, 0x28, 0x29},
	{10, 0x1e, 0x2a}, {11, 0x28, 0x2b}, {11, 0x1b, 0x2c}, {12, 0x21, 0x2d}, {13, 0x2a, 0x2e}, {13, 0x10, 0x2f},
	{7, 0x16, 0x30}, {7, 0x14, 0x31}, {8, 0x25, 0x32}, {9, 0x3d, 0x33}, {9, 0x38, 0x34}, {10, 0x4f, 0x35},
	{10, 0x49, 0x36}, {10, 0x40, 0x37}, {10, 0x2b, 0x38}, {11, 0x4c, 0x39}, {11, 0x38, 0x3a}, {11, 0x25, 0x3b},
	{11, 0x1a, 0x3c}, {12, 0x1f, 0x3d}, {13, 0x19, 0x3e}, {13, 0xe, 0x3f}, {8, 0x23, 0x40}, {7, 0x10, 0x41},
	{9, 0x3c, 0x42}, {9, 0x39, 0x43}, {10, 0x61, 0x44}, {10, 0x4b, 0x45}, {11, 0x72, 0x46}, {11, 0x5b, 0x47},
	{10, 0x36, 0x48}, {11, 0x49, 0x49}, {11, 0x37, 0x4a}, {12, 0x29, 0x4b}, {12, 0x30, 0x4c}, {13, 0x35, 0x4d},
	{13, 0x17, 0x4e}, {14, 0x18, 0x4f}, {9, 0x3a, 0x50}, {8, 0x1b, 0x51}, {9, 0x32, 0x52}, {10, 0x60, 0x53},
	{10, 0x4c, 0x54}, {10, 0x46, 0x55}, {11, 0x5d, 0x56}, {11, 0x54, 0x57}, {11, 0x4d, 0x58}, {11, 0x3a, 0x59},
	{12, 0x4f, 0x5a}, {11, 0x1d, 0x5b}, {13, 0x4a, 0x5c}, {13, 0x31, 0x5d}, {14, 0x29, 0x5e}, {14, 0x11, 0x5f},
	{9, 0x2f, 0x60}, {9, 0x2d, 0x61}, {10, 0x4e, 0x62}, {10, 0x4a, 0x63}, {11, 0x73, 0x64}, {11, 0x5e, 0x65},
	{11, 0x5a, 0x66}, {11, 0x4f, 0x67}, {11, 0x45, 0x68}, {12, 0x53, 0x69}, {12, 0x47, 0x6a}, {12, 0x32, 0x6b},
	{13, 0x3b, 0x6c}, {13, 0x26, 0x6d}, {14, 0x24, 0x6e}, {14, 0xf, 0x6f}, {10, 0x48, 0x70}, {9, 0x22, 0x71},
	{10, 0x38, 0x72}, {11, 0x5f, 0x73}, {11, 0x5c, 0x74}, {11, 0x55, 0x75}, {12, 0x5b, 0x76}, {12, 0x5a, 0x77},
	{12, 0x56, 0x78}, {12, 0x49, 0x79}, {13, 0x4d, 0x7a}, {13, 0x41, 0x7b}, {13, 0x33, 0x7c}, {14, 0x2c, 0x7d},
	{16, 0x2b, 0x7e}, {16, 0x2a, 0x7f}, {9, 0x2b, 0x80}, {8, 0x14, 0x81}, {9, 0x1e, 0x82}, {10, 0x2c, 0x83},
	{10, 0x37, 0x84}, {11, 0x4e, 0x85}, {11, 0x48, 0x86}, {12, 0x57, 0x87}, {12, 0x4e, 0x88}, {12, 0x3d, 0x89},
	{12, 0x2e, 0x8a}, {13, 0x36, 0x8b}, {13, 0x25, 0x8c}, {14, 0x1e, 0x8d}, {15, 0x14, 0x8e}, {15, 0x10, 0x8f},
	{10, 0x35, 0x90}, {9, 0x19, 0x91}, {10, 0x29, 0x92}, {10, 0x25, 0x93}, {11, 0x2c, 0x94}, {11, 0x3b, 0x95},
	{11, 0x36, 0x96}, {13, 0x51, 0x97}, {12, 0x42, 0x98}, {13, 0x4c, 0x99}, {13, 0x39, 0x9a}, {14, 0x36, 0x9b},
	{14, 0x25, 0x9c}, {14, 0x12, 0x9d}, {16, 0x27, 0x9e}, {15, 0xb, 0x9f}, {10, 0x23, 0xa0}, {10, 0x21, 0xa1},
	{10, 0x1f, 0xa2}, {11, 0x39, 0xa3}, {11, 0x2a, 0xa4}, {12, 0x52, 0xa5}, {12, 0x48, 0xa6}, {13, 0x50, 0xa7},
	{12, 0x2f, 0xa8}, {13, 0x3a, 0xa9}, {14, 0x37, 0xaa}, {13, 0x15, 0xab}, {14, 0x16, 0xac}, {15, 0x1a, 0xad},
	{16, 0x26, 0xae}, {17, 0x16, 0xaf}, {11, 0x35, 0xb0}, {10, 0x19, 0xb1}, {10, 0x17, 0xb2}, {11, 0x26, 0xb3},
	{12, 0x46, 0xb4}, {12, 0x3c, 0xb5}, {12, 0x33, 0xb6}, {12, 0x24, 0xb7}, {13, 0x37, 0xb8}, {13, 0x1a, 0xb9},
	{13, 0x22, 0xba}, {14, 0x17, 0xbb}, {15, 0x1b, 0xbc}, {15, 0xe, 0xbd}, {15, 0x9, 0xbe}, {16, 0x7, 0xbf},
	{11, 0x22, 0xc0}, {11, 0x20, 0xc1}, {11, 0x1c, 0xc2}, {12, 0x27, 0xc3}, {12, 0x31, 0xc4}, {13, 0x4b, 0xc5},
	{12, 0x1e, 0xc6}, {13, 0x34, 0xc7}, {14, 0x30, 0xc8}, {14, 0x28, 0xc9}, {15, 0x34, 0xca}, {15, 0x1c, 0xcb},
	{15, 0x12, 0xcc}, {16, 0x11, 0xcd}, {16, 0x9, 0xce}, {16, 0x5, 0xcf}, {12, 0x2d, 0xd0}, {11, 0x15, 0xd1},
	{12, 0x22, 0xd2}, {13, 0x40, 0xd3}, {13, 0x38, 0xd4}, {13, 0x32, 0xd5}, {14, 0x31, 0xd6}, {14, 0x2d, 0xd7},
	{14, 0x1f, 0xd8}, {14, 0x13, 0xd9}, {14, 0xc, 0xda}, {15, 0xf, 0xdb}, {16, 0xa, 0xdc}, {15, 0x7, 0xdd},
	{16, 0x6, 0xde}, {16, 0x3, 0xdf}, {13, 0x30, 0xe0}, {12, 0x17, 0xe1}, {12, 0x14, 0xe2}, {13, 0x27, 0xe3},
	{13, 0x24, 0xe4}, {13, 0x23, 0xe5}, {15, 0x35, 0xe6}, {14, 0x15, 0xe7}, {14, 0x10, 0xe8}, {17, 0x17, 0xe9},
	{15, 0xd, 0xea}, {15, 0xa, 0xeb}, {15, 0x6, 0xec}, {17, 0x1, 0xed}, {16, 0x4, 0xee}, {16, 0x2, 0xef},
	{12, 0x10, 0xf0}, {12, 0xf, 0xf1}, {13, 0x11, 0xf2}, {14, 0x1b, 0xf3}, {14, 0x19, 0xf4}, {14, 0x14, 0xf5},
	{15, 0x1d, 0xf6}, {14, 0xb, 0xf7}, {15, 0x11, 0xf8}, {15, 0xc, 0xf9}, {16, 0x10, 0xfa}, {16, 0x8, 0xfb},
	{19, 0x1, 0xfc}, {18, 0x1, 0xfd}, {19, 0x0, 0xfe}, {16, 0x1, 0xff},
}

var codes15 = []codeword{
	{3, 0x7, 0x00}, {4, 0xc, 0x01}, {5, 0x12, 0x02}, {7, 0x35, 0x03}, {7, 0x2f, 0x04}, {8, 0x4c, 0x05},
	{9, 0x7c, 0x06}, {9, 0x6c, 0x07}, {9, 0x59, 0x08}, {10, 0x7b, 0x09}, {10, 0x6c, 0x0a}, {11, 0x77, 0x0b},
	{11, 0x6b, 0x0c}, {11, 0x51, 0x0d}, {12, 0x7a, 0x0e}, {13, 0x3f, 0x0f}, {4, 0xd, 0x10}, {3, 0x5, 0x11},
	{5, 0x10, 0x12}, {6, 0x1b, 0x13}, {7, 0x2e, 0x14}, {7, 0x24, 0x15}, {8, 0x3d, 0x16}, {8, 0x33, 0x17},
	{8, 0x2a, 0x18}, {9, 0x46, 0x19}, {9, 0x34, 0x1a}, {10, 0x53, 0x1b}, {10, 0x41, 0x1c}, {10, 0x29, 0x1d},
	{11, 0x3b, 0x1e}, {11, 0x24, 0x1f}, {5, 0x13, 0x20}, {5, 0x11, 0x21}, {5, 0xf, 0x22}, {6, 0x18, 0x23},
	{7, 0x29, 0x24}, {7, 0x22, 0x25}, {8, 0x3b, 0x26}, {8, 0x30, 0x27}, {8, 0x28, 0x28}, {9, 0x40, 0x29},
	{9, 0x32, 0x2a}, {10, 0x4e, 0x2b}, {10, 0x3e, 0x2c}, {11, 0x50, 0x2d}, {11, 0x38, 0x2e}, {11, 0x21, 0x2f},
	{6, 0x1d, 0x30}, {6, 0x1c, 0x31}, {6, 0x19, 0x32}, {7, 0x2b, 0x33}, {7, 0x27, 0x34}, {8, 0x3f, 0x35},
	{8, 0x37, 0x36}, {9, 0x5d, 0x37}, {9, 0x4c, 0x38}, {9, 0x3b, 0x39}, {10, 0x5d, 0x3a}, {10, 0x48, 0x3b},
	{10, 0x36, 0x3c}, {11, 0x4b, 0x3d}, {11, 0x32, 0x3e}, {11, 0x1d, 0x3f}, {7, 0x34, 0x40}, {6, 0x16, 0x41},
	{7, 0x2a, 0x42}, {7, 0x28, 0x43}, {8, 0x43, 0x44}, {8, 0x39, 0x45}, {9, 0x5f, 0x46}, {9, 0x4f, 0x47},
	{9, 0x48, 0x48}, {9, 0x39, 0x49}, {10, 0x59, 0x4a}, {10, 0x45, 0x4b}, {10, 0x31, 0x4c}, {11, 0x42, 0x4d},
	{11, 0x2e, 0x4e}, {11, 0x1b, 0x4f}, {8, 0x4d, 0x50}, {7, 0x25, 0x51}, {7, 0x23, 0x52}, {8, 0x42, 0x53},
	{8, 0x3a, 0x54}, {8, 0x34, 0x55}, {9, 0x5b, 0x56}, {9, 0x4a, 0x57}, {9, 0x3e, 0x58}, {9, 0x30, 0x59},
	{10, 0x4f, 0x5a}, {10, 0x3f, 0x5b}, {11, 0x5a, 0x5c}, {11, 0x3e, 0x5d}, {11, 0x28, 0x5e}, {12, 0x26, 0x5f},
	{9, 0x7d, 0x60}, {7, 0x20, 0x61}, {8, 0x3c, 0x62}, {8, 0x38, 0x63}, {8, 0x32, 0x64}, {9, 0x5c, 0x65},
	{9, 0x4e, 0x66}, {9, 0x41, 0x67}, {9, 0x37, 0x68}, {10, 0x57, 0x69}, {10, 0x47, 0x6a}, {10, 0x33, 0x6b},
	{11, 0x49, 0x6c}, {11, 0x33, 0x6d}, {12, 0x46, 0x6e}, {12, 0x1e, 0x6f}, {9, 0x6d, 0x70}, {8, 0x35, 0x71},
	{8, 0x31, 0x72}, {9, 0x5e, 0x73}, {9, 0x58, 0x74}, {9, 0x4b, 0x75}, {9, 0x42, 0x76}, {10, 0x7a, 0x77},
	{10, 0x5b, 0x78}, {10, 0x49, 0x79}, {10, 0x38, 0x7a}, {10, 0x2a, 0x7b}, {11, 0x40, 0x7c}, {11, 0x2c, 0x7d},
	{11, 0x15, 0x7e}, {12, 0x19, 0x7f}, {9, 0x5a, 0x80}, {8, 0x2b, 0x81}, {8, 0x29, 0x82}, {9, 0x4d, 0x83},
	{9, 0x49, 0x84}, {9, 0x3f, 0x85}, {9, 0x38, 0x86}, {10, 0x5c, 0x87}, {10, 0x4d, 0x88}, {10, 0x42, 0x89},
	{10, 0x2f, 0x8a}, {11, 0x43, 0x8b}, {11, 0x30, 0x8c}, {12, 0x35, 0x8d}, {12, 0x24, 0x8e}, {12, 0x14, 0x8f},
	{9, 0x47, 0x90}, {8, 0x22, 0x91}, {9, 0x43, 0x92}, {9, 0x3c, 0x93}, {9, 0x3a, 0x94}, {9, 0x31, 0x95},
	{10, 0x58, 0x96}, {10, 0x4c, 0x97}, {10, 0x43, 0x98}, {11, 0x6a, 0x99}, {11, 0x47, 0x9a}, {11, 0x36, 0x9b},
	{11, 0x26, 0x9c}, {12, 0x27, 0x9d}, {12, 0x17, 0x9e}, {12, 0xf, 0x9f}, {10, 0x6d, 0xa0}, {9, 0x35, 0xa1},
	{9, 0x33, 0xa2}, {9, 0x2f, 0xa3}, {10, 0x5a, 0xa4}, {10, 0x52, 0xa5}, {10, 0x3a, 0xa6}, {10, 0x39, 0xa7},
	{10, 0x30, 0xa8}, {11, 0x48, 0xa9}, {11, 0x39, 0xaa}, {11, 0x29, 0xab}, {11, 0x17, 0xac}, {12, 0x1b, 0xad},
	{13, 0x3e, 0xae}, {12, 0x9, 0xaf}, {10, 0x56, 0xb0}, {9, 0x2a, 0xb1}, {9, 0x28, 0xb2}, {9, 0x25, 0xb3},
	{10, 0x46, 0xb4}, {10, 0x40, 0xb5}, {10, 0x34, 0xb6}, {10, 0x2b, 0xb7}, {11, 0x46, 0xb8}, {11, 0x37, 0xb9},
	{11, 0x2a, 0xba}, {11, 0x19, 0xbb}, {12, 0x1d, 0xbc}, {12, 0x12, 0xbd}, {12, 0xb, 0xbe}, {13, 0xb, 0xbf},
	{11, 0x76, 0xc0}, {10, 0x44, 0xc1}, {9, 0x1e, 0xc2}, {10, 0x37, 0xc3}, {10, 0x32, 0xc4}, {10, 0x2e, 0xc5},
	{11, 0x4a, 0xc6}, {11, 0x41, 0xc7}, {11, 0x31, 0xc8}, {11, 0x27, 0xc9}, {11, 0x18, 0xca}, {11, 0x10, 0xcb},
	{12, 0x16, 0xcc}, {12, 0xd, 0xcd}, {13, 0xe, 0xce}, {13, 0x7, 0xcf}, {11, 0x5b, 0xd0}, {10, 0x2c, 0xd1},
	{10, 0x27, 0xd2}, {10, 0x26, 0xd3}, {10, 0x22, 0xd4}, {11, 0x3f, 0xd5}, {11, 0x34, 0xd6}, {11, 0x2d, 0xd7},
	{11, 0x1f, 0xd8}, {12, 0x34, 0xd9}, {12, 0x1c, 0xda}, {12, 0x13, 0xdb}, {12, 0xe, 0xdc}, {12, 0x8, 0xdd},
	{13, 0x9, 0xde}, {13, 0x3, 0xdf}, {12, 0x7b, 0xe0}, {11, 0x3c, 0xe1}, {11, 0x3a, 0xe2}, {11, 0x35, 0xe3},
	{11, 0x2f, 0xe4}, {11, 0x2b, 0xe5}, {11, 0x20, 0xe6}, {11, 0x16, 0xe7}, {12, 0x25, 0xe8}, {12, 0x18, 0xe9},
	{12, 0x11, 0xea}, {12, 0xc, 0xeb}, {13, 0xf, 0xec}, {13, 0xa, 0xed}, {12, 0x2, 0xee}, {13, 0x1, 0xef},
	{12, 0x47, 0xf0}, {11, 0x25, 0xf1}, {11, 0x22, 0xf2}, {11, 0x1e, 0xf3}, {11, 0x1c, 0xf4}, {11, 0x14, 0xf5},
	{11, 0x11, 0xf6}, {12, 0x1a, 0xf7}, {12, 0x15, 0xf8}, {12, 0x10, 0xf9}, {12, 0xa, 0xfa}, {12, 0x6, 0xfb},
	{13, 0x8, 0xfc}, {13, 0x6, 0xfd}, {13, 0x2, 0xfe}, {13, 0x0, 0xff},
}

var codes16 = []codeword{
	{1, 0x1, 0x00}, {4, 0x5, 0x01}, {6, 0xe, 0x02}, {8, 0x2c, 0x03}, {9, 0x4a, 0x04}, {9, 0x3f, 0x05},
	{10, 0x6e, 0x06}, {10, 0x5d, 0x07}, {11, 0xac, 0x08}, {11, 0x95, 0x09}, {11, 0x8a, 0x0a}, {12, 0xf2, 0x0b},
	{12, 0xe1, 0x0c}, {12, 0xc3, 0x0d}, {13, 0x178, 0x0e}, {9, 0x11, 0x0f}, {3, 0x3, 0x10}, {4, 0x4, 0x11},
	{6, 0xc, 0x12}, {7, 0x14, 0x13}, {8, 0x23, 0x14}, {9, 0x3e, 0x15}, {9, 0x35, 0x16}, {9, 0x2f, 0x17},
	{10, 0x53, 0x18}, {10, 0x4b, 0x19}, {10, 0x44, 0x1a}, {11, 0x77, 0x1b}, {12, 0xc9, 0x1c}, {11, 0x6b, 0x1d},
	{12, 0xcf, 0x1e}, {8, 0x9, 0x1f}, {6, 0xf, 0x20}, {6, 0xd, 0x21}, {7, 0x17, 0x22}, {8, 0x26, 0x23},
	{9, 0x43, 0x24}, {9, 0x3a, 0x25}, {10, 0x67, 0x26}, {10, 0x5a, 0x27}, {11, 0xa1, 0x28}, {10, 0x48, 0x29},
	{11, 0x7f, 0x2a}, {11, 0x75, 0x2b}, {11, 0x6e, 0x2c}, {12, 0xd1, 0x2d}, {12, 0xce, 0x2e}, {9, 0x10, 0x2f},
	{8, 0x2d, 0x30}, {7, 0x15, 0x31}, {8, 0x27, 0x32}, {9, 0x45, 0x33}, {9, 0x40, 0x34}, {10, 0x72, 0x35},
	{10, 0x63, 0x36}, {10, 0x57, 0x37}, {11, 0x9e, 0x38}, {11, 0x8c, 0x39}, {12, 0xfc, 0x3a}, {12, 0xd4, 0x3b},
	{12, 0xc7, 0x3c}, {13, 0x183, 0x3d}, {13, 0x16d, 0x3e}, {10, 0x1a, 0x3f}, {9, 0x4b, 0x40}, {8, 0x24, 0x41},
	{9, 0x44, 0x42}, {9, 0x41, 0x43}, {10, 0x73, 0x44}, {10, 0x65, 0x45}, {11, 0xb3, 0x46}, {11, 0xa4, 0x47},
	{11, 0x9b, 0x48}, {12, 0x108, 0x49}, {12, 0xf6, 0x4a}, {12, 0xe2, 0x4b}, {13, 0x18b, 0x4c}, {13, 0x17e, 0x4d},
	{13, 0x16a, 0x4e}, {9, 0x9, 0x4f}, {9, 0x42, 0x50}, {8, 0x1e, 0x51}, {9, 0x3b, 0x52}, {9, 0x38, 0x53},
	{10, 0x66, 0x54}, {11, 0xb9, 0x55}, {11, 0xad, 0x56}, {12, 0x109, 0x57}, {11, 0x8e, 0x58}, {12, 0xfd, 0x59},
	{12, 0xe8, 0x5a}, {13, 0x190, 0x5b}, {13, 0x184, 0x5c}, {13, 0x17a, 0x5d}, {14, 0x1bd, 0x5e}, {10, 0x10, 0x5f},
	{10, 0x6f, 0x60}, {9, 0x36, 0x61}, {9, 0x34, 0x62}, {10, 0x64, 0x63}, {11, 0xb8, 0x64}, {11, 0xb2, 0x65},
	{11, 0xa0, 0x66}, {11, 0x85, 0x67}, {12, 0x101, 0x68}, {12, 0xf4, 0x69}, {12, 0xe4, 0x6a}, {12, 0xd9, 0x6b},
	{13, 0x181, 0x6c}, {13, 0x16e, 0x6d}, {14, 0x2cb, 0x6e}, {10, 0xa, 0x6f}, {10, 0x62, 0x70}, {9, 0x30, 0x71},
	{10, 0x5b, 0x72}, {10, 0x58, 0x73}, {11, 0xa5, 0x74}, {11, 0x9d, 0x75}, {11, 0x94, 0x76}, {12, 0x105, 0x77},
	{12, 0xf8, 0x78}, {13, 0x197, 0x79}, {13, 0x18d, 0x7a}, {13, 0x174, 0x7b}, {13, 0x17c, 0x7c}, {15, 0x379, 0x7d},
	{15, 0x374, 0x7e}, {10, 0x8, 0x7f}, {10, 0x55, 0x80}, {10, 0x54, 0x81}, {10, 0x51, 0x82}, {11, 0x9f, 0x83},
	{11, 0x9c, 0x84}, {11, 0x8f, 0x85}, {12, 0x104, 0x86}, {12, 0xf9, 0x87}, {13, 0x1ab, 0x88}, {13, 0x191, 0x89},
	{13, 0x188, 0x8a}, {13, 0x17f, 0x8b}, {14, 0x2d7, 0x8c}, {14, 0x2c9, 0x8d}, {14, 0x2c4, 0x8e}, {10, 0x7, 0x8f},
	{11, 0x9a, 0x90}, {10, 0x4c, 0x91}, {10, 0x49, 0x92}, {11, 0x8d, 0x93}, {11, 0x83, 0x94}, {12, 0x100, 0x95},
	{12, 0xf5, 0x96}, {13, 0x1aa, 0x97}, {13, 0x196, 0x98}, {13, 0x18a, 0x99}, {13, 0x180, 0x9a}, {14, 0x2df, 0x9b},
	{13, 0x167, 0x9c}, {14, 0x2c6, 0x9d}, {13, 0x160, 0x9e}, {11, 0xb, 0x9f}, {11, 0x8b, 0xa0}, {11, 0x81, 0xa1},
	{10, 0x43, 0xa2}, {11, 0x7d, 0xa3}, {12, 0xf7, 0xa4}, {12, 0xe9, 0xa5}, {12, 0xe5, 0xa6}, {12, 0xdb, 0xa7},
	{13, 0x189, 0xa8}, {14, 0x2e7, 0xa9}, {14, 0x2e1, 0xaa}, {14, 0x2d0, 0xab}, {15, 0x375, 0xac}, {15, 0x372, 0xad},
	{14, 0x1b7, 0xae}, {10, 0x4, 0xaf}, {12, 0xf3, 0xb0}, {11, 0x78, 0xb1}, {11, 0x76, 0xb2}, {11, 0x73, 0xb3},
	{12, 0xe3, 0xb4}, {12, 0xdf, 0xb5}, {13, 0x18c, 0xb6}, {14, 0x2ea, 0xb7}, {14, 0x2e6, 0xb8}, {14, 0x2e0, 0xb9},
	{14, 0x2d1, 0xba}, {14, 0x2c8, 0xbb}, {14, 0x2c2, 0xbc}, {13, 0xdf, 0xbd}, {14, 0x1b4, 0xbe}, {11, 0x6, 0xbf},
	{12, 0xca, 0xc0}, {12, 0xe0, 0xc1}, {12, 0xde, 0xc2}, {12, 0xda, 0xc3}, {12, 0xd8, 0xc4}, {13, 0x185, 0xc5},
	{13, 0x182, 0xc6}, {13, 0x17d, 0xc7}, {13, 0x16c, 0xc8}, {15, 0x378, 0xc9}, {14, 0x1bb, 0xca}, {14, 0x2c3, 0xcb},
	{14, 0x1b8, 0xcc}, {14, 0x1b5, 0xcd}, {16, 0x6c0, 0xce}, {11, 0x4, 0xcf}, {14, 0x2eb, 0xd0}, {12, 0xd3, 0xd1},
	{12, 0xd2, 0xd2}, {12, 0xd0, 0xd3}, {13, 0x172, 0xd4}, {13, 0x17b, 0xd5}, {14, 0x2de, 0xd6}, {14, 0x2d3, 0xd7},
	{14, 0x2ca, 0xd8}, {16, 0x6c7, 0xd9}, {15, 0x373, 0xda}, {15, 0x36d, 0xdb}, {15, 0x36c, 0xdc}, {17, 0xd83, 0xdd},
	{15, 0x361, 0xde}, {11, 0x2, 0xdf}, {13, 0x179, 0xe0}, {13, 0x171, 0xe1}, {11, 0x66, 0xe2}, {12, 0xbb, 0xe3},
	{14, 0x2d6, 0xe4}, {14, 0x2d2, 0xe5}, {13, 0x166, 0xe6}, {14, 0x2c7, 0xe7}, {14, 0x2c5, 0xe8}, {15, 0x362, 0xe9},
	{16, 0x6c6, 0xea}, {15, 0x367, 0xeb}, {17, 0xd82, 0xec}, {15, 0x366, 0xed}, {14, 0x1b2, 0xee}, {11, 0x0, 0xef},
	{9, 0xc, 0xf0}, {8, 0xa, 0xf1}, {8, 0x7, 0xf2}, {9, 0xb, 0xf3}, {9, 0xa, 0xf4}, {10, 0x11, 0xf5},
	{10, 0xb, 0xf6}, {10, 0x9, 0xf7}, {11, 0xd, 0xf8}, {11, 0xc, 0xf9}, {11, 0xa, 0xfa}, {11, 0x7, 0xfb},
	{11, 0x5, 0xfc}, {11, 0x3, 0xfd}, {11, 0x1, 0xfe}, {8, 0x3, 0xff},
}

var codes24 = []codeword{
	{4, 0xf, 0x00}, {4, 0xd, 0x01}, {6, 0x2e, 0x02}, {7, 0x50, 0x03}, {8, 0x92, 0x04}, {9, 0x106, 0x05},
	{9, 0xf8, 0x06}, {10, 0x1b2, 0x07}, {10, 0x1aa, 0x08}, {11, 0x29d, 0x09}, {11, 0x28d, 0x0a}, {11, 0x289, 0x0b},
	{11, 0x26d, 0x0c}, {11, 0x205, 0x0d}, {12, 0x408, 0x0e}, {9, 0x58, 0x0f}, {4, 0xe, 0x10}, {4, 0xc, 0x11},
	{5, 0x15, 0x12}, {6, 0x26, 0x13}, {7, 0x47, 0x14}, {8, 0x82, 0x15}, {8, 0x7a, 0x16}, {9, 0xd8, 0x17},
	{9, 0xd1, 0x18}, {9, 0xc6, 0x19}, {10, 0x147, 0x1a}, {10, 0x159, 0x1b}, {10, 0x13f, 0x1c}, {10, 0x129, 0x1d},
	{10, 0x117, 0x1e}, {8, 0x2a, 0x1f}, {6, 0x2f, 0x20}, {5, 0x16, 0x21}, {6, 0x29, 0x22}, {7, 0x4a, 0x23},
	{7, 0x44, 0x24}, {8, 0x80, 0x25}, {8, 0x78, 0x26}, {9, 0xdd, 0x27}, {9, 0xcf, 0x28}, {9, 0xc2, 0x29},
	{9, 0xb6, 0x2a}, {10, 0x154, 0x2b}, {10, 0x13b, 0x2c}, {10, 0x127, 0x2d}, {11, 0x21d, 0x2e}, {7, 0x12, 0x2f},
	{7, 0x51, 0x30}, {6, 0x27, 0x31}, {7, 0x4b, 0x32}, {7, 0x46, 0x33}, {8, 0x86, 0x34}, {8, 0x7d, 0x35},
	{8, 0x74, 0x36}, {9, 0xdc, 0x37}, {9, 0xcc, 0x38}, {9, 0xbe, 0x39}, {9, 0xb2, 0x3a}, {10, 0x145, 0x3b},
	{10, 0x137, 0x3c}, {10, 0x125, 0x3d}, {10, 0x10f, 0x3e}, {7, 0x10, 0x3f}, {8, 0x93, 0x40}, {7, 0x48, 0x41},
	{7, 0x45, 0x42}, {8, 0x87, 0x43}, {8, 0x7f, 0x44}, {8, 0x76, 0x45}, {8, 0x70, 0x46}, {9, 0xd2, 0x47},
	{9, 0xc8, 0x48}, {9, 0xbc, 0x49}, {10, 0x160, 0x4a}, {10, 0x143, 0x4b}, {10, 0x132, 0x4c}, {10, 0x11d, 0x4d},
	{11, 0x21c, 0x4e}, {7, 0xe, 0x4f}, {9, 0x107, 0x50}, {7, 0x42, 0x51}, {8, 0x81, 0x52}, {8, 0x7e, 0x53},
	{8, 0x77, 0x54}, {8, 0x72, 0x55}, {9, 0xd6, 0x56}, {9, 0xca, 0x57}, {9, 0xc0, 0x58}, {9, 0xb4, 0x59},
	{10, 0x155, 0x5a}, {10, 0x13d, 0x5b}, {10, 0x12d, 0x5c}, {10, 0x119, 0x5d}, {10, 0x106, 0x5e}, {7, 0xc, 0x5f},
	{9, 0xf9, 0x60}, {8, 0x7b, 0x61}, {8, 0x79, 0x62}, {8, 0x75, 0x63}, {8, 0x71, 0x64}, {9, 0xd7, 0x65},
	{9, 0xce, 0x66}, {9, 0xc3, 0x67}, {9, 0xb9, 0x68}, {10, 0x15b, 0x69}, {10, 0x14a, 0x6a}, {10, 0x134, 0x6b},
	{10, 0x123, 0x6c}, {10, 0x110, 0x6d}, {11, 0x208, 0x6e}, {7, 0xa, 0x6f}, {10, 0x1b3, 0x70}, {8, 0x73, 0x71},
	{8, 0x6f, 0x72}, {8, 0x6d, 0x73}, {9, 0xd3, 0x74}, {9, 0xcb, 0x75}, {9, 0xc4, 0x76}, {9, 0xbb, 0x77},
	{10, 0x161, 0x78}, {10, 0x14c, 0x79}, {10, 0x139, 0x7a}, {10, 0x12a, 0x7b}, {10, 0x11b, 0x7c}, {11, 0x213, 0x7d},
	{11, 0x17d, 0x7e}, {8, 0x11, 0x7f}, {10, 0x1ab, 0x80}, {9, 0xd4, 0x81}, {9, 0xd0, 0x82}, {9, 0xcd, 0x83},
	{9, 0xc9, 0x84}, {9, 0xc1, 0x85}, {9, 0xba, 0x86}, {9, 0xb1, 0x87}, {9, 0xa9, 0x88}, {10, 0x140, 0x89},
	{10, 0x12f, 0x8a}, {10, 0x11e, 0x8b}, {10, 0x10c, 0x8c}, {11, 0x202, 0x8d}, {11, 0x179, 0x8e}, {8, 0x10, 0x8f},
	{10, 0x14f, 0x90}, {9, 0xc7, 0x91}, {9, 0xc5, 0x92}, {9, 0xbf, 0x93}, {9, 0xbd, 0x94}, {9, 0xb5, 0x95},
	{9, 0xae, 0x96}, {10, 0x14d, 0x97}, {10, 0x141, 0x98}, {10, 0x131, 0x99}, {10, 0x121, 0x9a}, {10, 0x113, 0x9b},
	{11, 0x209, 0x9c}, {11, 0x17b, 0x9d}, {11, 0x173, 0x9e}, {8, 0xb, 0x9f}, {11, 0x29c, 0xa0}, {9, 0xb8, 0xa1},
	{9, 0xb7, 0xa2}, {9, 0xb3, 0xa3}, {9, 0xaf, 0xa4}, {10, 0x158, 0xa5}, {10, 0x14b, 0xa6}, {10, 0x13a, 0xa7},
	{10, 0x130, 0xa8}, {10, 0x122, 0xa9}, {10, 0x115, 0xaa}, {11, 0x212, 0xab}, {11, 0x17f, 0xac}, {11, 0x175, 0xad},
	{11, 0x16e, 0xae}, {8, 0xa, 0xaf}, {11, 0x28c, 0xb0}, {10, 0x15a, 0xb1}, {9, 0xab, 0xb2}, {9, 0xa8, 0xb3},
	{9, 0xa4, 0xb4}, {10, 0x13e, 0xb5}, {10, 0x135, 0xb6}, {10, 0x12b, 0xb7}, {10, 0x11f, 0xb8}, {10, 0x114, 0xb9},
	{10, 0x107, 0xba}, {11, 0x201, 0xbb}, {11, 0x177, 0xbc}, {11, 0x170, 0xbd}, {11, 0x16a, 0xbe}, {8, 0x6, 0xbf},
	{11, 0x288, 0xc0}, {10, 0x142, 0xc1}, {10, 0x13c, 0xc2}, {10, 0x138, 0xc3}, {10, 0x133, 0xc4}, {10, 0x12e, 0xc5},
	{10, 0x124, 0xc6}, {10, 0x11c, 0xc7}, {10, 0x10d, 0xc8}, {10, 0x105, 0xc9}, {11, 0x200, 0xca}, {11, 0x178, 0xcb},
	{11, 0x172, 0xcc}, {11, 0x16c, 0xcd}, {11, 0x167, 0xce}, {8, 0x4, 0xcf}, {11, 0x26c, 0xd0}, {10, 0x12c, 0xd1},
	{10, 0x128, 0xd2}, {10, 0x126, 0xd3}, {10, 0x120, 0xd4}, {10, 0x11a, 0xd5}, {10, 0x111, 0xd6}, {10, 0x10a, 0xd7},
	{11, 0x203, 0xd8}, {11, 0x17c, 0xd9}, {11, 0x176, 0xda}, {11, 0x171, 0xdb}, {11, 0x16d, 0xdc}, {11, 0x169, 0xdd},
	{11, 0x165, 0xde}, {8, 0x2, 0xdf}, {12, 0x409, 0xe0}, {10, 0x118, 0xe1}, {10, 0x116, 0xe2}, {10, 0x112, 0xe3},
	{10, 0x10b, 0xe4}, {10, 0x108, 0xe5}, {10, 0x103, 0xe6}, {11, 0x17e, 0xe7}, {11, 0x17a, 0xe8}, {11, 0x174, 0xe9},
	{11, 0x16f, 0xea}, {11, 0x16b, 0xeb}, {11, 0x168, 0xec}, {11, 0x166, 0xed}, {11, 0x164, 0xee}, {8, 0x0, 0xef},
	{8, 0x2b, 0xf0}, {7, 0x14, 0xf1}, {7, 0x13, 0xf2}, {7, 0x11, 0xf3}, {7, 0xf, 0xf4}, {7, 0xd, 0xf5},
	{7, 0xb, 0xf6}, {7, 0x9, 0xf7}, {7, 0x7, 0xf8}, {7, 0x6, 0xf9}, {7, 0x4, 0xfa}, {8, 0x7, 0xfb},
	{8, 0x5, 0xfc}, {8, 0x3, 0xfd}, {8, 0x1, 0xfe}, {4, 0x3, 0xff},
}

var codesA = []codeword{
	{1, 0x1, 0x00}, {4, 0x5, 0x01}, {4, 0x4, 0x02}, {5, 0x5, 0x03}, {4, 0x6, 0x04}, {6, 0x5, 0x05},
	{5, 0x4, 0x06}, {6, 0x4, 0x07}, {4, 0x7, 0x08}, {5, 0x3, 0x09}, {5, 0x6, 0x0a}, {6, 0x0, 0x0b},
	{5, 0x7, 0x0c}, {6, 0x2, 0x0d}, {6, 0x3, 0x0e}, {6, 0x1, 0x0f},
}

var codesB = []codeword{
	{4, 0xf, 0x00}, {4, 0xe, 0x01}, {4, 0xd, 0x02}, {4, 0xc, 0x03}, {4, 0xb, 0x04}, {4, 0xa, 0x05},
	{4, 0x9, 0x06}, {4, 0x8, 0x07}, {4, 0x7, 0x08}, {4, 0x6, 0x09}, {4, 0x5, 0x0a}, {4, 0x4, 0x0b},
	{4, 0x3, 0x0c}, {4, 0x2, 0x0d}, {4, 0x1, 0x0e}, {4, 0x0, 0x0f},
}
